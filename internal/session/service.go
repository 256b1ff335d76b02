package session

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/autogestion/dealership-backend/pkg/enums"
	pkgerrors "github.com/autogestion/dealership-backend/pkg/errors"
	"github.com/autogestion/dealership-backend/pkg/kv"
	"github.com/autogestion/dealership-backend/pkg/logger"
)

// Key holds the single active session. There is at most one signed-in
// operator at a time.
const Key = "current-user"

// Session is the signed-in operator. The role is declared at login and
// taken at face value; there is no credential check behind it.
type Session struct {
	ID       int64           `json:"id"`
	Username string          `json:"username"`
	Role     enums.ActorRole `json:"role"`
}

// Service manages the singleton session record.
type Service interface {
	Login(ctx context.Context, username string, role enums.ActorRole) (*Session, error)
	Current(ctx context.Context) (*Session, bool)
	Logout(ctx context.Context) bool
}

type service struct {
	store *kv.Store
	logg  *logger.Logger
}

// NewService builds the session service on the shared store.
func NewService(store *kv.Store, logg *logger.Logger) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("store required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{store: store, logg: logg}, nil
}

// Login replaces any previous session.
func (s *service) Login(ctx context.Context, username string, role enums.ActorRole) (*Session, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "username is required")
	}
	if !role.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid role")
	}

	sess := &Session{
		ID:       time.Now().UnixMilli(),
		Username: username,
		Role:     role,
	}
	raw, err := json.Marshal(sess)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to encode session")
	}
	if !s.store.Set(ctx, Key, raw) {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "store write failed")
	}
	return sess, nil
}

func (s *service) Current(ctx context.Context) (*Session, bool) {
	raw, ok := s.store.Get(ctx, Key)
	if !ok {
		return nil, false
	}
	var sess Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		s.logg.Warn(ctx, fmt.Sprintf("dropping undecodable session record: %v", err))
		return nil, false
	}
	return &sess, true
}

func (s *service) Logout(ctx context.Context) bool {
	return s.store.Delete(ctx, Key)
}
