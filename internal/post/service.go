// Package post はフィード投稿のドメインロジックを提供する。
// 投稿の作成、2段階の削除プロトコル、いいねのトグル、コメント追記、
// フィード・検索の読み出しを担当する。
package post

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/hitoshi/stylati/internal/model"
	"github.com/hitoshi/stylati/internal/repository"
	"github.com/hitoshi/stylati/internal/security"
)

// SessionSource は現在のセッションを提供するインターフェース。
// Anonymous状態ではnilを返す。
type SessionSource interface {
	Session() *model.Session
}

// CreateInput は投稿作成の入力。
// Descriptionは必須、ImageURLは解決済みURLであること。
// Price/Brand/Categoryはマーケットプレイス項目（任意）。
type CreateInput struct {
	Description string
	ImageURL    string
	Price       float64
	Brand       string
	Category    string
}

// pendingDelete は確認待ちの削除リクエスト。
// リクエスト時のセッションユーザー（=所有者）を記録し、
// 確認時に同一ユーザーであることを再検証する。
type pendingDelete struct {
	postID  int
	ownerID int
}

// Service は投稿に関するビジネスロジックを提供する。
type Service struct {
	posts     repository.PostRepository
	users     repository.UserRepository
	sessions  SessionSource
	sanitizer security.ContentSanitizerService

	// 確認待ちの削除リクエスト。トークン→リクエスト内容。
	// 同一投稿への新しいリクエストは古いリクエストを無効化する。
	pending map[string]pendingDelete
}

// NewService はServiceを生成する。
func NewService(
	posts repository.PostRepository,
	users repository.UserRepository,
	sessions SessionSource,
	sanitizer security.ContentSanitizerService,
) *Service {
	return &Service{
		posts:     posts,
		users:     users,
		sessions:  sessions,
		sanitizer: sanitizer,
		pending:   make(map[string]pendingDelete),
	}
}

// Create は投稿を作成しフィードの先頭へ挿入する。
// 認証済みセッション、空でない説明、解決済み画像URLを要求する。
// 所有者のpostsCountはUsersコレクションとセッションキャッシュの両方で加算される。
func (s *Service) Create(ctx context.Context, in CreateInput) (*model.Post, error) {
	session := s.sessions.Session()
	if session == nil {
		return nil, model.NewNotAuthenticatedError()
	}

	description := s.sanitizer.Sanitize(in.Description)
	if strings.TrimSpace(description) == "" {
		return nil, model.NewEmptyContentError()
	}
	if err := security.ValidateImageURL(in.ImageURL); err != nil {
		return nil, err
	}

	post := &model.Post{
		User:        session.User.Clone(),
		ImageURL:    strings.TrimSpace(in.ImageURL),
		Description: description,
		Price:       in.Price,
		Brand:       s.sanitizer.Sanitize(in.Brand),
		Category:    s.sanitizer.Sanitize(in.Category),
		Comments:    []*model.Comment{},
		Timestamp:   model.TimestampNow,
	}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("投稿の作成に失敗しました: %w", err)
	}

	if err := s.adjustPostsCount(ctx, session, +1); err != nil {
		return nil, err
	}

	slog.Info("投稿を作成しました",
		slog.Int("post_id", post.ID),
		slog.Int("user_id", session.User.ID),
	)
	return post.Clone(), nil
}

// RequestDelete は投稿削除の第1段階。所有権を検証し、
// 確認トークンを発行する。削除はConfirmDeleteまで適用されない。
// 同一投稿への再リクエストは以前のトークンを無効化する。
func (s *Service) RequestDelete(ctx context.Context, postID int) (string, error) {
	session := s.sessions.Session()
	if session == nil {
		return "", model.NewNotAuthenticatedError()
	}

	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return "", fmt.Errorf("投稿の取得に失敗しました: %w", err)
	}
	if post == nil {
		return "", model.NewPostNotFoundError(postID)
	}
	if post.User.ID != session.User.ID {
		return "", model.NewNotPostOwnerError(postID)
	}

	for token, req := range s.pending {
		if req.postID == postID {
			delete(s.pending, token)
		}
	}

	token := uuid.NewString()
	s.pending[token] = pendingDelete{postID: postID, ownerID: session.User.ID}
	slog.Info("投稿の削除リクエストを受け付けました",
		slog.Int("post_id", postID),
		slog.Int("user_id", session.User.ID),
	)
	return token, nil
}

// ConfirmDelete は投稿削除の第2段階。confirmedがtrueの場合のみ削除を適用し、
// 所有者のpostsCountを減算して、削除された場合trueを返す。
// confirmedがfalseの場合はリクエストを破棄しfalseを返す。
// リクエストはリクエスト時のセッションユーザーに束縛される。
// 確認時のセッションユーザーが異なる場合はリクエストを破棄して拒否する。
// トークンが不明、またはセッションが失われている場合はエラーを返す。
func (s *Service) ConfirmDelete(ctx context.Context, token string, confirmed bool) (bool, error) {
	session := s.sessions.Session()
	if session == nil {
		return false, model.NewNotAuthenticatedError()
	}

	req, ok := s.pending[token]
	if !ok {
		return false, model.NewDeleteNotRequestedError()
	}
	delete(s.pending, token)

	if session.User.ID != req.ownerID {
		slog.Warn("別ユーザーの削除リクエストの確認を拒否しました",
			slog.Int("post_id", req.postID),
			slog.Int("owner_id", req.ownerID),
			slog.Int("user_id", session.User.ID),
		)
		return false, model.NewNotPostOwnerError(req.postID)
	}

	if !confirmed {
		slog.Info("投稿の削除がキャンセルされました", slog.Int("post_id", req.postID))
		return false, nil
	}

	if err := s.posts.Delete(ctx, req.postID); err != nil {
		return false, err
	}
	session.Unlike(req.postID)

	if err := s.adjustPostsCount(ctx, session, -1); err != nil {
		return false, err
	}

	slog.Info("投稿を削除しました",
		slog.Int("post_id", req.postID),
		slog.Int("user_id", session.User.ID),
	)
	return true, nil
}

// ToggleLike はセッションのいいね集合内の所属を反転し、投稿のいいね数を
// ちょうど1だけ増減する。反転後にいいね済みかどうかを返す。
// 2回連続のトグルで元の状態へ戻る。
func (s *Service) ToggleLike(ctx context.Context, postID int) (bool, error) {
	session := s.sessions.Session()
	if session == nil {
		return false, model.NewNotAuthenticatedError()
	}

	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return false, fmt.Errorf("投稿の取得に失敗しました: %w", err)
	}
	if post == nil {
		return false, model.NewPostNotFoundError(postID)
	}

	liked := session.ToggleLike(postID)
	if liked {
		post.Likes++
	} else {
		post.Likes--
	}
	if err := s.posts.Update(ctx, post); err != nil {
		return false, fmt.Errorf("投稿の更新に失敗しました: %w", err)
	}
	return liked, nil
}

// AddComment は投稿のコメント列末尾へセッションユーザー名義のコメントを追記する。
// 認証済みセッションと、トリム後に空でないテキストを要求する。
// コメント順は追記順（時系列）。
func (s *Service) AddComment(ctx context.Context, postID int, text string) (*model.Comment, error) {
	session := s.sessions.Session()
	if session == nil {
		return nil, model.NewNotAuthenticatedError()
	}

	text = s.sanitizer.Sanitize(strings.TrimSpace(text))
	if text == "" {
		return nil, model.NewEmptyContentError()
	}

	comment := &model.Comment{
		User:      session.User.Clone(),
		Text:      text,
		Timestamp: model.TimestampNow,
	}
	if err := s.posts.AppendComment(ctx, postID, comment); err != nil {
		return nil, err
	}

	slog.Info("コメントを追加しました",
		slog.Int("post_id", postID),
		slog.Int("user_id", session.User.ID),
	)
	return comment.Clone(), nil
}

// Feed は全投稿を新しい順で返す。
func (s *Service) Feed(ctx context.Context) ([]*model.Post, error) {
	return s.posts.ListFeed(ctx)
}

// ListByUser は指定ユーザーが所有する投稿をフィード順で返す。
func (s *Service) ListByUser(ctx context.Context, userID int) ([]*model.Post, error) {
	return s.posts.ListByUserID(ctx, userID)
}

// Search は説明・ブランド・カテゴリに対する部分一致検索を行う。
func (s *Service) Search(ctx context.Context, query string) ([]*model.Post, error) {
	return s.posts.Search(ctx, query)
}

// adjustPostsCount は所有者のpostsCountをUsersコレクションと
// セッションキャッシュの両方へ反映する。
func (s *Service) adjustPostsCount(ctx context.Context, session *model.Session, delta int) error {
	owner, err := s.users.FindByID(ctx, session.User.ID)
	if err != nil {
		return fmt.Errorf("ユーザーの取得に失敗しました: %w", err)
	}
	if owner == nil {
		return model.NewUserNotFoundError(session.User.ID)
	}

	owner.PostsCount += delta
	if err := s.users.Update(ctx, owner); err != nil {
		return fmt.Errorf("ユーザーの更新に失敗しました: %w", err)
	}
	session.User.PostsCount = owner.PostsCount
	return nil
}
