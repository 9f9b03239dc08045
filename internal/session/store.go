// Package session owns the onboarding/session state of the wallet and runs the sign-up
// use case: validate the form, ask the key provider for a new account, then move the
// session to signed in and tell the user about it.
//
// State changes are published as Mutations to subscribers in the order they were applied,
// so a view (or a test) can follow every commit.
package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/AlexZinkM/wallet-session/internal/model"
	"github.com/AlexZinkM/wallet-session/internal/validation"

	"go.uber.org/zap"
)

// Mutation names
const (
	MutationSetModalSessionState = "setModalSessionState"
	MutationSetModalHelp         = "setModalHelp"
	MutationSetModalSession      = "setModalSession"
	MutationSetSignedIn          = "setSignedIn"
	MutationSetAccount           = "setAccount"
	MutationNotify               = "notify"
)

// Notification texts
const (
	SignedUpTitle     = "Signed Up"
	SignUpFailedTitle = "Sign Up Failed"
)

// Mutation is one committed state change
type Mutation struct {
	Name    string
	Payload any
}

// KeyProvider creates the key pair for a new account.
// It may return an error, a nil account, or even panic; the store treats all of these as a
// failed attempt.
type KeyProvider interface {
	CreateKey(ctx context.Context, req model.CreateKeyRequest) (*model.Account, error)
}

// NotificationSink displays notifications to the user
type NotificationSink interface {
	Notify(n model.Notification)
}

// Unlocker verifies an account password for the lock screen
type Unlocker interface {
	Unlock(name string, password []byte) error
}

// Option configures a Store
type Option func(*Store)

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// WithUnlocker enables Unlock
func WithUnlocker(u Unlocker) Option {
	return func(s *Store) {
		s.unlocker = u
	}
}

// WithFailureNotifications makes failed sign-ups emit an error notification.
// Off by default: only success is announced.
func WithFailureNotifications(enabled bool) Option {
	return func(s *Store) {
		s.notifyFailures = enabled
	}
}

type observer struct {
	id int
	fn func(Mutation)
}

// Store holds the session state. Create it with NewStore; the zero value is not usable.
// Safe for concurrent use. Overlapping SignUp calls are independent and the last one to
// finish decides the final state.
type Store struct {
	provider       KeyProvider
	sink           NotificationSink
	unlocker       Unlocker
	logger         *zap.Logger
	notifyFailures bool

	// lifetime is canceled by Close; attempts still in flight must not commit afterwards
	lifetime context.Context
	teardown context.CancelFunc

	// emitMu keeps observer delivery in commit order
	emitMu sync.Mutex

	mu        sync.Mutex
	state     model.SessionState
	modalOpen bool
	modalHelp bool
	account   *model.Account
	observers []observer
	nextID    int
}

// NewStore creates a Store in the welcome state with the session modal open.
func NewStore(provider KeyProvider, sink NotificationSink, opts ...Option) *Store {
	lifetime, teardown := context.WithCancel(context.Background())
	s := &Store{
		provider:  provider,
		sink:      sink,
		logger:    zap.NewNop(),
		lifetime:  lifetime,
		teardown:  teardown,
		state:     model.SessionWelcome,
		modalOpen: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns a copy of the current session state
func (s *Store) State() model.SessionSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot := model.SessionSnapshot{
		State:     s.state,
		ModalOpen: s.modalOpen,
		ModalHelp: s.modalHelp,
	}
	if s.account != nil {
		account := *s.account
		snapshot.Account = &account
	}
	return snapshot
}

// Subscribe registers fn for every future mutation and returns a function that removes it.
// fn runs synchronously and must not call the store's mutating methods.
func (s *Store) Subscribe(fn func(Mutation)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.observers = append(s.observers, observer{id: id, fn: fn})

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, o := range s.observers {
			if o.id == id {
				s.observers = append(s.observers[:i:i], s.observers[i+1:]...)
				return
			}
		}
	}
}

// Close tears the store down. Attempts still waiting on the key provider see their context
// canceled and will not change state when they return.
func (s *Store) Close() {
	s.teardown()
}

// SetModalSessionState switches the screen shown by the session modal.
// Only the screen states (welcome, signup, signin) can be set this way; signed in and
// locked are reached through SignUp, Lock and Unlock.
func (s *Store) SetModalSessionState(state model.SessionState) error {
	switch state {
	case model.SessionWelcome, model.SessionSignUp, model.SessionSignIn:
	default:
		return fmt.Errorf("%w: cannot show %q", ErrInvalidTransition, state)
	}
	return s.commit(func() ([]Mutation, error) {
		s.state = state
		return []Mutation{{Name: MutationSetModalSessionState, Payload: state}}, nil
	})
}

// SetModalHelp opens or closes the help overlay
func (s *Store) SetModalHelp(open bool) {
	s.commit(func() ([]Mutation, error) {
		s.modalHelp = open
		return []Mutation{{Name: MutationSetModalHelp, Payload: open}}, nil
	})
}

// SetModalSession shows or hides the session modal
func (s *Store) SetModalSession(open bool) {
	s.commit(func() ([]Mutation, error) {
		s.modalOpen = open
		return []Mutation{{Name: MutationSetModalSession, Payload: open}}, nil
	})
}

// SignUp validates fields and, if they pass, asks the key provider for a new account.
//
// Invalid fields return a *ValidationError without touching state or calling the provider.
// A provider error, nil account or panic returns a *CreationError, again without touching
// state. On success the session becomes signed in, the modal closes and a success
// notification is sent.
func (s *Store) SignUp(ctx context.Context, fields model.SignUpFields) (*model.Account, error) {
	result := validation.Validate(fields)
	if !result.Valid {
		return nil, &ValidationError{Result: result}
	}

	req := model.CreateKeyRequest{
		Password:   fields.Password,
		Account:    fields.AccountName,
		SeedPhrase: fields.SeedPhrase,
	}

	account, err := s.createKey(ctx, req)
	if err == nil && account == nil {
		err = ErrNoAccount
	}
	if err != nil {
		s.logger.Warn("sign up failed", zap.String("account", req.Account), zap.Error(err))
		s.notifyFailure(req.Account)
		return nil, &CreationError{Account: req.Account, Err: err}
	}

	stored := *account
	notification := model.Notification{
		Title: SignedUpTitle,
		Body:  fmt.Sprintf("Your account %s is ready. Keep your seed phrase somewhere safe.", stored.Name),
		Kind:  model.NotificationSuccess,
	}

	err = s.commit(func() ([]Mutation, error) {
		if s.lifetime.Err() != nil {
			return nil, ErrClosed
		}
		s.account = &stored
		s.state = model.SessionSignedIn
		s.modalOpen = false
		return []Mutation{
			{Name: MutationSetAccount, Payload: stored},
			{Name: MutationSetSignedIn, Payload: true},
			{Name: MutationSetModalSession, Payload: false},
			{Name: MutationNotify, Payload: notification},
		}, nil
	})
	if err != nil {
		s.logger.Warn("sign up finished after teardown", zap.String("account", req.Account))
		return nil, &CreationError{Account: req.Account, Err: err}
	}
	s.sink.Notify(notification)

	s.logger.Info("signed up", zap.String("account", stored.Name), zap.String("address", stored.Address))
	return account, nil
}

// Lock moves a signed in session to the lock screen
func (s *Store) Lock() error {
	return s.commit(func() ([]Mutation, error) {
		if s.state != model.SessionSignedIn {
			return nil, fmt.Errorf("%w: lock from %q", ErrInvalidTransition, s.state)
		}
		s.state = model.SessionLocked
		return []Mutation{{Name: MutationSetModalSessionState, Payload: model.SessionLocked}}, nil
	})
}

// Unlock returns a locked session to signed in once the account password checks out.
// password must be []byte for security (caller should zero it after use)
func (s *Store) Unlock(password []byte) error {
	if s.unlocker == nil {
		return ErrUnlockUnsupported
	}

	s.mu.Lock()
	state, account := s.state, s.account
	s.mu.Unlock()
	if state != model.SessionLocked || account == nil {
		return fmt.Errorf("%w: unlock from %q", ErrInvalidTransition, state)
	}

	if err := s.unlocker.Unlock(account.Name, password); err != nil {
		s.logger.Warn("unlock failed", zap.String("account", account.Name), zap.Error(err))
		return fmt.Errorf("failed to unlock account: %w", err)
	}

	return s.commit(func() ([]Mutation, error) {
		if s.state != model.SessionLocked || s.account == nil || s.account.Name != account.Name {
			return nil, fmt.Errorf("%w: session changed during unlock", ErrInvalidTransition)
		}
		s.state = model.SessionSignedIn
		return []Mutation{{Name: MutationSetSignedIn, Payload: true}}, nil
	})
}

// SignOut forgets the account and goes back to the welcome screen
func (s *Store) SignOut() {
	s.commit(func() ([]Mutation, error) {
		s.account = nil
		s.state = model.SessionWelcome
		s.modalOpen = true
		return []Mutation{
			{Name: MutationSetSignedIn, Payload: false},
			{Name: MutationSetAccount, Payload: nil},
			{Name: MutationSetModalSessionState, Payload: model.SessionWelcome},
			{Name: MutationSetModalSession, Payload: true},
		}, nil
	})
}

// createKey runs the provider with a context that also ends on Close, and turns a panic
// into an error
func (s *Store) createKey(ctx context.Context, req model.CreateKeyRequest) (account *model.Account, err error) {
	attemptCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	stop := context.AfterFunc(s.lifetime, cancel)
	defer stop()

	defer func() {
		if r := recover(); r != nil {
			account, err = nil, fmt.Errorf("%w: %v", ErrUnexpected, r)
		}
	}()
	return s.provider.CreateKey(attemptCtx, req)
}

func (s *Store) notifyFailure(name string) {
	if !s.notifyFailures || s.lifetime.Err() != nil {
		return
	}
	notification := model.Notification{
		Title: SignUpFailedTitle,
		Body:  fmt.Sprintf("Account %s could not be created.", name),
		Kind:  model.NotificationError,
	}
	s.commit(func() ([]Mutation, error) {
		return []Mutation{{Name: MutationNotify, Payload: notification}}, nil
	})
	s.sink.Notify(notification)
}

// commit applies fn under the state lock, then hands the resulting mutations to every
// observer in order. Nothing is delivered when fn fails.
func (s *Store) commit(fn func() ([]Mutation, error)) error {
	s.emitMu.Lock()
	defer s.emitMu.Unlock()

	s.mu.Lock()
	mutations, err := fn()
	observers := make([]observer, len(s.observers))
	copy(observers, s.observers)
	s.mu.Unlock()

	if err != nil {
		return err
	}
	for _, m := range mutations {
		for _, o := range observers {
			o.fn(m)
		}
	}
	return nil
}
