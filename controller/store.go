// Package controller keeps the queue of rounds waiting to be run and the
// results of the ones that have finished. Workers pop a round, lock it for
// as long as they run it and write its standings back.
package controller

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/battlesnakeio/arena/config"
	"github.com/battlesnakeio/arena/rules"
	uuid "github.com/satori/go.uuid"
)

var (
	// LockExpiry is the time after which a lock will expire.
	LockExpiry = 1 * time.Second
	// ErrNotFound is thrown when a round is not found.
	ErrNotFound = errors.New("controller: round not found")
	// ErrIsLocked is returned when a round is locked.
	ErrIsLocked = errors.New("controller: round is locked")
)

// Round is a queued, running or finished round.
type Round struct {
	ID        string
	Status    rules.RoundStatus
	Config    config.Round
	Created   time.Time
	Turns     int64
	Standings []rules.Standing
	Error     string
}

// Store is the interface to the round queue.
type Store interface {
	Lock(ctx context.Context, key, token string) (string, error)
	Unlock(ctx context.Context, key, token string) error
	PopRoundID(context.Context) (string, error)
	CreateRound(context.Context, *Round) error
	GetRound(context.Context, string) (*Round, error)
	ListRounds(context.Context) ([]*Round, error)
	SetRoundStatus(c context.Context, id string, status rules.RoundStatus, reason string) error
	FinishRound(c context.Context, id string, turns int64, standings []rules.Standing) error
}

type contextKey int

const tokenKey contextKey = 1

// ContextWithLockToken returns a context carrying a lock token. Writes to a
// locked round must be made with the token that locked it.
func ContextWithLockToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey, token)
}

// ContextGetLockToken is used to retrieve the lock token from the context.
func ContextGetLockToken(ctx context.Context) string {
	if s, ok := ctx.Value(tokenKey).(string); ok {
		return s
	}
	return ""
}

// InMemStore returns an in memory implementation of the Store interface.
func InMemStore() Store {
	return &inmem{
		rounds: map[string]*Round{},
		locks:  map[string]*lock{},
	}
}

type lock struct {
	token   string
	expires time.Time
}

type inmem struct {
	rounds map[string]*Round
	locks  map[string]*lock
	lock   sync.Mutex
}

func (in *inmem) Lock(ctx context.Context, key, token string) (string, error) {
	in.lock.Lock()
	defer in.lock.Unlock()

	now := time.Now()

	l, ok := in.locks[key]
	if ok {
		// We have a lock token, if it's expired just delete it and continue as
		// if nothing happened.
		if l.expires.Before(now) {
			delete(in.locks, key)
		} else {
			// If the token is not expired and matched our active token, let's
			// just bump the expiration.
			if l.token == token {
				l.expires = now.Add(LockExpiry)
				return l.token, nil
			}
			return "", ErrIsLocked
		}
	}
	if token == "" {
		token = uuid.NewV4().String()
	}
	l = &lock{
		token:   token,
		expires: now.Add(LockExpiry),
	}
	in.locks[key] = l
	return l.token, nil
}

func (in *inmem) isLocked(key string) bool {
	l, ok := in.locks[key]
	return ok && l.expires.After(time.Now())
}

// checkToken fails when someone other than the holder of token has key
// locked.
func (in *inmem) checkToken(key, token string) error {
	l, ok := in.locks[key]
	if !ok || l.expires.Before(time.Now()) || l.token == token {
		return nil
	}
	return ErrIsLocked
}

func (in *inmem) Unlock(ctx context.Context, key, token string) error {
	in.lock.Lock()
	defer in.lock.Unlock()

	l, ok := in.locks[key]
	// No lock? Don't care.
	if !ok {
		return nil
	}
	// We have a lock that matches our token, even if it's expired we are safe
	// to remove it. If it's expired, remove it as well.
	if l.expires.Before(time.Now()) || l.token == token {
		delete(in.locks, key)
		return nil
	}
	return ErrIsLocked
}

// PopRoundID returns the oldest running round that is not locked.
func (in *inmem) PopRoundID(ctx context.Context) (string, error) {
	in.lock.Lock()
	defer in.lock.Unlock()

	var next *Round
	for id, r := range in.rounds {
		if r.Status != rules.RoundStatusRunning || in.isLocked(id) {
			continue
		}
		if next == nil || r.Created.Before(next.Created) {
			next = r
		}
	}
	if next == nil {
		return "", ErrNotFound
	}
	return next.ID, nil
}

func (in *inmem) CreateRound(ctx context.Context, r *Round) error {
	in.lock.Lock()
	defer in.lock.Unlock()

	if r.ID == "" {
		r.ID = uuid.NewV4().String()
	}
	if r.Status == "" {
		r.Status = rules.RoundStatusRunning
	}
	if r.Created.IsZero() {
		r.Created = time.Now()
	}
	in.rounds[r.ID] = r
	return nil
}

func (in *inmem) GetRound(ctx context.Context, id string) (*Round, error) {
	in.lock.Lock()
	defer in.lock.Unlock()

	r, ok := in.rounds[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *r
	return &cp, nil
}

func (in *inmem) ListRounds(ctx context.Context) ([]*Round, error) {
	in.lock.Lock()
	defer in.lock.Unlock()

	rounds := make([]*Round, 0, len(in.rounds))
	for _, r := range in.rounds {
		cp := *r
		rounds = append(rounds, &cp)
	}
	sort.Slice(rounds, func(i, j int) bool {
		return rounds[i].Created.Before(rounds[j].Created)
	})
	return rounds, nil
}

func (in *inmem) SetRoundStatus(ctx context.Context, id string, status rules.RoundStatus, reason string) error {
	in.lock.Lock()
	defer in.lock.Unlock()

	r, ok := in.rounds[id]
	if !ok {
		return ErrNotFound
	}
	if err := in.checkToken(id, ContextGetLockToken(ctx)); err != nil {
		return err
	}
	r.Status = status
	r.Error = reason
	return nil
}

func (in *inmem) FinishRound(ctx context.Context, id string, turns int64, standings []rules.Standing) error {
	in.lock.Lock()
	defer in.lock.Unlock()

	r, ok := in.rounds[id]
	if !ok {
		return ErrNotFound
	}
	if err := in.checkToken(id, ContextGetLockToken(ctx)); err != nil {
		return err
	}
	r.Status = rules.RoundStatusComplete
	r.Turns = turns
	r.Standings = standings
	return nil
}
