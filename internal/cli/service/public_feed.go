package service

import (
	"FishLog/internal/cli/mapper"
	"FishLog/internal/cli/model"
	"FishLog/internal/cli/repo"
	"context"
	"fmt"
	"sync"
)

const defaultPublicLimit = 100

// PublicFeed: публичные уловы всех пользователей. Без удалённого бэкенда пуст.
type PublicFeed struct {
	session repo.Session
	remote  repo.CatchTable

	mu      sync.Mutex
	catches []model.Catch
	err     string
	seq     uint64
}

func NewPublicFeed(session repo.Session, remote repo.CatchTable) *PublicFeed {
	return &PublicFeed{session: session, remote: remote, catches: []model.Catch{}}
}

func (f *PublicFeed) Catches() []model.Catch {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]model.Catch, len(f.catches))
	copy(out, f.catches)
	return out
}

func (f *PublicFeed) Err() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.err
}

func (f *PublicFeed) Refresh(ctx context.Context, limit int) {
	if f.remote == nil || !f.session.RemoteConfigured() {
		return
	}
	if limit <= 0 {
		limit = defaultPublicLimit
	}

	f.mu.Lock()
	f.err = ""
	f.seq++
	my := f.seq
	f.mu.Unlock()

	rows, err := f.remote.ListPublic(ctx, limit)

	f.mu.Lock()
	defer f.mu.Unlock()
	if my != f.seq {
		return
	}
	if err != nil {
		f.err = fmt.Sprintf("could not load public catches: %v", err)
		return
	}
	list := make([]model.Catch, 0, len(rows))
	for _, r := range rows {
		list = append(list, mapper.CatchFromRow(r))
	}
	f.catches = list
}
