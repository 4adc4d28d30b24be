package service

import (
	"context"
	"errors"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/tastyhub/internal/auth"
	"github.com/mmynk/tastyhub/internal/middleware"
	"github.com/mmynk/tastyhub/internal/storage"
)

// AuthService implements sign-up, sign-in and session lookup.
// Expected failures are reported in AuthResult rather than as RPC errors.
type AuthService struct {
	authenticator auth.Authenticator
	jwtManager    *auth.JWTManager
	users         storage.UserStore
	sessions      *Sessions
	logger        *slog.Logger
}

// NewAuthService creates an authentication service.
func NewAuthService(authenticator auth.Authenticator, jwtManager *auth.JWTManager, users storage.UserStore, sessions *Sessions, logger *slog.Logger) *AuthService {
	return &AuthService{
		authenticator: authenticator,
		jwtManager:    jwtManager,
		users:         users,
		sessions:      sessions,
		logger:        logger,
	}
}

// SignUp creates an account and signs it in.
func (s *AuthService) SignUp(ctx context.Context, req *connect.Request[SignUpRequest]) (*connect.Response[AuthResult], error) {
	s.logger.Info("SignUp request", "email", req.Msg.Email)

	user, err := s.authenticator.Register(ctx, req.Msg.Email, req.Msg.Name, req.Msg.Password)
	switch {
	case errors.Is(err, auth.ErrEmailExists),
		errors.Is(err, auth.ErrWeakPassword),
		errors.Is(err, auth.ErrInvalidEmail),
		errors.Is(err, auth.ErrMissingName):
		s.logger.Warn("Registration refused", "email", req.Msg.Email, "error", err)
		return connect.NewResponse(&AuthResult{Message: err.Error()}), nil
	case err != nil:
		s.logger.Error("Registration failed", "email", req.Msg.Email, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	token, err := s.jwtManager.Generate(user)
	if err != nil {
		s.logger.Error("Failed to generate token", "user_id", user.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	s.logger.Info("User registered", "user_id", user.ID, "email", user.Email)
	return connect.NewResponse(&AuthResult{
		Success: true,
		Message: "Account created",
		User:    user,
		Token:   token,
	}), nil
}

// SignIn checks credentials and issues a session token.
func (s *AuthService) SignIn(ctx context.Context, req *connect.Request[SignInRequest]) (*connect.Response[AuthResult], error) {
	s.logger.Info("SignIn request", "email", req.Msg.Email)

	if req.Msg.Email == "" || req.Msg.Password == "" {
		return connect.NewResponse(&AuthResult{Message: "Email and password are required"}), nil
	}

	user, err := s.authenticator.Authenticate(ctx, req.Msg.Email, req.Msg.Password)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		s.logger.Warn("Sign in failed", "email", req.Msg.Email)
		return connect.NewResponse(&AuthResult{Message: err.Error()}), nil
	}
	if err != nil {
		s.logger.Error("Sign in failed", "email", req.Msg.Email, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	token, err := s.jwtManager.Generate(user)
	if err != nil {
		s.logger.Error("Failed to generate token", "user_id", user.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	s.logger.Info("User signed in", "user_id", user.ID)
	return connect.NewResponse(&AuthResult{
		Success: true,
		Message: "Signed in",
		User:    user,
		Token:   token,
	}), nil
}

// SignOut revokes the caller's token. Signing out without a session succeeds.
func (s *AuthService) SignOut(ctx context.Context, req *connect.Request[Empty]) (*connect.Response[AuthResult], error) {
	claims := middleware.GetClaims(ctx)
	if claims == nil {
		return connect.NewResponse(&AuthResult{Success: true, Message: "Already signed out"}), nil
	}

	s.jwtManager.Revoke(claims)
	s.sessions.Forget(claims.UserID)

	s.logger.Info("User signed out", "user_id", claims.UserID)
	return connect.NewResponse(&AuthResult{Success: true, Message: "Signed out"}), nil
}

// GetSession returns the caller's session, or a nil session when the
// caller is anonymous or the account no longer exists.
func (s *AuthService) GetSession(ctx context.Context, req *connect.Request[Empty]) (*connect.Response[SessionResponse], error) {
	claims := middleware.GetClaims(ctx)
	if claims == nil {
		return connect.NewResponse(&SessionResponse{}), nil
	}

	user, err := s.users.GetUserByID(ctx, claims.UserID)
	if err != nil {
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	if user == nil {
		return connect.NewResponse(&SessionResponse{}), nil
	}

	session := &Session{User: user}
	if claims.ExpiresAt != nil {
		session.ExpiresAt = claims.ExpiresAt.Unix()
	}
	return connect.NewResponse(&SessionResponse{Session: session}), nil
}
