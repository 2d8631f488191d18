package repository

import (
	"context"
	"strings"
	"sync"

	"github.com/samber/lo"

	"github.com/hitoshi/stylati/internal/model"
)

// MemoryUserRepository はUserRepositoryのインメモリ実装。
// レコードは内部コピーとして保持し、取得時もコピーを返す。
// 呼び出し側での変更はUpdateを通さない限り反映されない。
type MemoryUserRepository struct {
	mu     sync.RWMutex
	users  []*model.User
	nextID int
}

// NewMemoryUserRepository は空のMemoryUserRepositoryを生成する。
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{nextID: 1}
}

// FindByID は指定IDのユーザーを取得する。見つからない場合はnilを返す。
func (r *MemoryUserRepository) FindByID(ctx context.Context, id int) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := lo.Find(r.users, func(u *model.User) bool { return u.ID == id })
	if !ok {
		return nil, nil
	}
	return u.Clone(), nil
}

// FindByUsername はユーザー名でユーザーを検索する。比較は大文字小文字を区別しない。
func (r *MemoryUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := lo.Find(r.users, func(u *model.User) bool {
		return strings.EqualFold(u.Username, username)
	})
	if !ok {
		return nil, nil
	}
	return u.Clone(), nil
}

// Create はユーザーを作成する。IDが0の場合は次のIDを採番する。
func (r *MemoryUserRepository) Create(ctx context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if user.ID == 0 {
		user.ID = r.nextID
	}
	if user.ID >= r.nextID {
		r.nextID = user.ID + 1
	}
	r.users = append(r.users, user.Clone())
	return nil
}

// Update は既存ユーザーのレコードを置き換える。
// 対象が存在しない場合はmodel.APIError(USER_NOT_FOUND)を返す。
func (r *MemoryUserRepository) Update(ctx context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, i, ok := lo.FindIndexOf(r.users, func(u *model.User) bool { return u.ID == user.ID })
	if !ok {
		return model.NewUserNotFoundError(user.ID)
	}
	r.users[i] = user.Clone()
	return nil
}

// List は全ユーザーを登録順で返す。
func (r *MemoryUserRepository) List(ctx context.Context) ([]*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return lo.Map(r.users, func(u *model.User, _ int) *model.User { return u.Clone() }), nil
}
