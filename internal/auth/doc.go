// Package auth handles user registration and password checks.
//
// Passwords are hashed with bcrypt (AUTH_BCRYPT_COST, default 12) and must be
// 8 to 72 bytes long. There are no sessions or tokens: Login only confirms
// that the password matches and returns the user, with the hash excluded
// from JSON.
//
// # Usage
//
//	authService := auth.NewService(users.NewRepository(db.DB), validation.New(), cfg.Auth)
//	user, err := authService.Login(ctx, "alice", "correct-horse")
//
// Failures are *apperrors.Error values: MissingField and Validation for bad
// signup input, DuplicateKey for a taken username or email, Unauthorized for
// login mismatches.
package auth
