package repository

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/samber/lo"

	"github.com/hitoshi/stylati/internal/model"
)

// MemoryPostRepository はPostRepositoryのインメモリ実装。
// フィード順（新しい順）を保持し、投稿IDは単調増加で採番する。
// 削除済みIDは再利用しない。
type MemoryPostRepository struct {
	mu            sync.RWMutex
	posts         []*model.Post
	nextID        int
	lastCommentID int64
	nowFn         func() time.Time
}

// NewMemoryPostRepository は空のMemoryPostRepositoryを生成する。
func NewMemoryPostRepository() *MemoryPostRepository {
	return &MemoryPostRepository{
		nextID: 1,
		nowFn:  time.Now,
	}
}

// FindByID は指定IDの投稿を取得する。見つからない場合はnilを返す。
func (r *MemoryPostRepository) FindByID(ctx context.Context, id int) (*model.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := lo.Find(r.posts, func(p *model.Post) bool { return p.ID == id })
	if !ok {
		return nil, nil
	}
	return p.Clone(), nil
}

// Create は投稿を作成し、フィードの先頭に挿入する。
func (r *MemoryPostRepository) Create(ctx context.Context, post *model.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if post.ID == 0 {
		post.ID = r.nextID
	}
	if post.ID >= r.nextID {
		r.nextID = post.ID + 1
	}
	for _, c := range post.Comments {
		if c.ID > r.lastCommentID {
			r.lastCommentID = c.ID
		}
	}
	r.posts = append([]*model.Post{post.Clone()}, r.posts...)
	return nil
}

// Update は既存投稿のレコードを置き換える。フィード内の位置は変えない。
// 対象が存在しない場合はmodel.APIError(POST_NOT_FOUND)を返す。
func (r *MemoryPostRepository) Update(ctx context.Context, post *model.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, i, ok := lo.FindIndexOf(r.posts, func(p *model.Post) bool { return p.ID == post.ID })
	if !ok {
		return model.NewPostNotFoundError(post.ID)
	}
	r.posts[i] = post.Clone()
	return nil
}

// Delete は指定IDの投稿を削除する。
// 対象が存在しない場合はmodel.APIError(POST_NOT_FOUND)を返す。
func (r *MemoryPostRepository) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, i, ok := lo.FindIndexOf(r.posts, func(p *model.Post) bool { return p.ID == id })
	if !ok {
		return model.NewPostNotFoundError(id)
	}
	r.posts = append(r.posts[:i], r.posts[i+1:]...)
	return nil
}

// ListFeed は全投稿を新しい順で返す。
func (r *MemoryPostRepository) ListFeed(ctx context.Context) ([]*model.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return lo.Map(r.posts, func(p *model.Post, _ int) *model.Post { return p.Clone() }), nil
}

// ListByUserID は指定ユーザーが所有する投稿をフィード順で返す。
func (r *MemoryPostRepository) ListByUserID(ctx context.Context, userID int) ([]*model.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	owned := lo.Filter(r.posts, func(p *model.Post, _ int) bool { return p.User.ID == userID })
	return lo.Map(owned, func(p *model.Post, _ int) *model.Post { return p.Clone() }), nil
}

// Search は説明・ブランド・カテゴリに対する部分一致検索を行う。
// 比較は大文字小文字を区別しない。空白のみのクエリは空の結果を返す。
func (r *MemoryPostRepository) Search(ctx context.Context, query string) ([]*model.Post, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil, nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	hits := lo.Filter(r.posts, func(p *model.Post, _ int) bool {
		return strings.Contains(strings.ToLower(p.Description), q) ||
			strings.Contains(strings.ToLower(p.Brand), q) ||
			strings.Contains(strings.ToLower(p.Category), q)
	})
	return lo.Map(hits, func(p *model.Post, _ int) *model.Post { return p.Clone() }), nil
}

// AppendComment は指定投稿のコメント列末尾へコメントを追記する。
// IDは作成時刻のミリ秒値だが、同一ミリ秒内の連続追記でも
// 重複しないよう直前のIDより必ず大きい値を採番する。
func (r *MemoryPostRepository) AppendComment(ctx context.Context, postID int, comment *model.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, i, ok := lo.FindIndexOf(r.posts, func(p *model.Post) bool { return p.ID == postID })
	if !ok {
		return model.NewPostNotFoundError(postID)
	}

	if comment.ID == 0 {
		id := r.nowFn().UnixMilli()
		if id <= r.lastCommentID {
			id = r.lastCommentID + 1
		}
		comment.ID = id
	}
	if comment.ID > r.lastCommentID {
		r.lastCommentID = comment.ID
	}

	p := r.posts[i].Clone()
	p.Comments = append(p.Comments, comment.Clone())
	r.posts[i] = p
	return nil
}

// UpdateOwner は指定ユーザーが所有する全投稿の所有者スナップショットを張り替える。
// コメント内のスナップショットは書き込み時点のまま残す。
func (r *MemoryPostRepository) UpdateOwner(ctx context.Context, owner *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.posts {
		if p.User.ID != owner.ID {
			continue
		}
		updated := p.Clone()
		updated.User = owner.Clone()
		r.posts[i] = updated
	}
	return nil
}
