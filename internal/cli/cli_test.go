package cli

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/buzzwords/internal/database"
	"github.com/mrlokans/buzzwords/internal/entities"
)

func seedStore(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cli.db")
	db, err := database.NewDatabase(database.Options{Driver: database.DriverSQLite, DSN: path})
	require.NoError(t, err)
	defer db.Close()

	kept := &entities.Word{Word: "kept", Definition: "stays", PartOfSpeech: entities.PartOfSpeechNoun, Synonyms: []string{}, Antonyms: []string{}, Username: "alice"}
	gone := &entities.Word{Word: "gone", Definition: "leaves", PartOfSpeech: entities.PartOfSpeechNoun, Synonyms: []string{}, Antonyms: []string{}, Username: "alice"}
	require.NoError(t, db.DB.Create(kept).Error)
	require.NoError(t, db.DB.Create(gone).Error)

	for _, b := range []*entities.Bookmark{
		{WordID: kept.ID, Username: "bob"},
		{WordID: gone.ID, Username: "bob"},
		{WordID: gone.ID, Username: "carol"},
	} {
		require.NoError(t, db.DB.Omit("Word").Create(b).Error)
	}
	require.NoError(t, db.DB.Delete(&entities.Word{}, "id = ?", gone.ID).Error)

	require.NoError(t, db.DB.Create(&entities.AuditEvent{
		Username: "bob", EventType: entities.AuditEventAuth, Action: "login", Status: entities.AuditStatusSuccess,
	}).Error)
	require.NoError(t, db.DB.Create(&entities.AuditEvent{
		Username: "alice", EventType: entities.AuditEventWord, Action: "word_submit",
		Description: "submitted gone", Status: entities.AuditStatusSuccess,
	}).Error)

	return path
}

func countBookmarks(t *testing.T, path string) int64 {
	t.Helper()
	db, err := database.NewDatabase(database.Options{Driver: database.DriverSQLite, DSN: path})
	require.NoError(t, err)
	defer db.Close()

	var n int64
	require.NoError(t, db.DB.WithContext(context.Background()).Model(&entities.Bookmark{}).Count(&n).Error)
	return n
}

func TestSweepBookmarksCommand(t *testing.T) {
	path := seedStore(t)

	t.Run("dry run leaves bookmarks in place", func(t *testing.T) {
		var out bytes.Buffer
		cmd := NewSweepBookmarksCommand()
		cmd.Out = &out
		require.NoError(t, cmd.ParseFlags([]string{"-db", path, "-dry-run"}))
		require.NoError(t, cmd.Run())

		assert.Contains(t, out.String(), "DRY RUN: 2 orphan bookmarks")
		assert.EqualValues(t, 3, countBookmarks(t, path))
	})

	t.Run("sweep removes orphans", func(t *testing.T) {
		var out bytes.Buffer
		cmd := NewSweepBookmarksCommand()
		cmd.Out = &out
		require.NoError(t, cmd.ParseFlags([]string{"-db", path}))
		require.NoError(t, cmd.Run())

		assert.Contains(t, out.String(), "Removed 2 orphan bookmarks")
		assert.EqualValues(t, 1, countBookmarks(t, path))
	})
}

func TestSweepBookmarksCommand_UnknownDriver(t *testing.T) {
	cmd := NewSweepBookmarksCommand()
	require.NoError(t, cmd.ParseFlags([]string{"-driver", "mysql"}))
	assert.Error(t, cmd.Run())
}

func TestAuditLogCommand(t *testing.T) {
	path := seedStore(t)

	t.Run("all events", func(t *testing.T) {
		var out bytes.Buffer
		cmd := NewAuditLogCommand()
		cmd.Out = &out
		require.NoError(t, cmd.ParseFlags([]string{"-db", path}))
		require.NoError(t, cmd.Run())

		assert.Contains(t, out.String(), "login")
		assert.Contains(t, out.String(), "submitted gone")
		assert.Contains(t, out.String(), "Showing 2 of 2 events")
	})

	t.Run("filtered by type and user", func(t *testing.T) {
		var out bytes.Buffer
		cmd := NewAuditLogCommand()
		cmd.Out = &out
		require.NoError(t, cmd.ParseFlags([]string{"-db", path, "-type", "word", "-user", "alice"}))
		require.NoError(t, cmd.Run())

		assert.Contains(t, out.String(), "word_submit")
		assert.NotContains(t, out.String(), "login")
		assert.Contains(t, out.String(), "Showing 1 of 1 events")
	})
}

func TestAuditLogCommand_ParseFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{name: "defaults", args: nil},
		{name: "known type", args: []string{"-type", "bookmark"}},
		{name: "unknown type", args: []string{"-type", "sync"}, wantErr: true},
		{name: "zero limit", args: []string{"-limit", "0"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewAuditLogCommand().ParseFlags(tt.args)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestParseFlags_Help(t *testing.T) {
	err := NewSweepBookmarksCommand().ParseFlags([]string{"-h"})
	assert.True(t, errors.Is(err, flag.ErrHelp))
}
