// Package user はプロフィール編集のドメインロジックを提供する。
package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hitoshi/stylati/internal/model"
	"github.com/hitoshi/stylati/internal/repository"
	"github.com/hitoshi/stylati/internal/security"
)

// SessionSource は現在のセッションを提供する。
// Anonymous状態ではnilを返す。
type SessionSource interface {
	Session() *model.Session
}

// Service はプロフィール編集のビジネスロジックを提供する。
type Service struct {
	users     repository.UserRepository
	posts     repository.PostRepository
	sessions  SessionSource
	sanitizer security.ContentSanitizerService
}

// NewService はServiceを生成する。
func NewService(
	users repository.UserRepository,
	posts repository.PostRepository,
	sessions SessionSource,
	sanitizer security.ContentSanitizerService,
) *Service {
	return &Service{
		users:     users,
		posts:     posts,
		sessions:  sessions,
		sanitizer: sanitizer,
	}
}

// UpdateProfile はセッションユーザー自身のプロフィールを更新する。
// 編集可能な項目はFullName・AvatarURL・Bio・SNSリンクのみ。
// Usernameは不変であり、入力で変更されていた場合は保存済みの値を維持する
// （フォーム側でread-onlyだが、ストア側でも明示的に強制する）。
// Password・各カウンタも保存済みの値を維持する。
// 更新後の識別情報は所有する全投稿のスナップショットと
// セッションキャッシュの両方へ伝播される。
func (s *Service) UpdateProfile(ctx context.Context, updated *model.User) (*model.User, error) {
	session := s.sessions.Session()
	if session == nil {
		return nil, model.NewNotAuthenticatedError()
	}
	if updated == nil || updated.ID != session.User.ID {
		return nil, model.NewUserMismatchError()
	}

	current, err := s.users.FindByID(ctx, updated.ID)
	if err != nil {
		return nil, fmt.Errorf("ユーザーの取得に失敗しました: %w", err)
	}
	if current == nil {
		return nil, model.NewUserNotFoundError(updated.ID)
	}

	if updated.Username != current.Username {
		slog.Warn("ユーザー名の変更は無視されました",
			slog.Int("user_id", current.ID),
			slog.String("username", current.Username),
		)
	}

	next := current.Clone()
	next.FullName = s.sanitizer.Sanitize(updated.FullName)
	next.AvatarURL = updated.AvatarURL
	next.Bio = s.sanitizer.Sanitize(updated.Bio)
	next.Instagram = updated.Instagram
	next.Twitter = updated.Twitter
	next.Website = updated.Website

	if err := s.users.Update(ctx, next); err != nil {
		return nil, fmt.Errorf("ユーザーの更新に失敗しました: %w", err)
	}

	// 所有投稿のスナップショットへ新しい識別情報を張り替える。
	// コメント内のスナップショットは書き込み時点のまま残す。
	if err := s.posts.UpdateOwner(ctx, next); err != nil {
		return nil, fmt.Errorf("所有投稿の更新に失敗しました: %w", err)
	}

	session.User = next.Clone()

	slog.Info("プロフィールを更新しました", slog.Int("user_id", next.ID))
	return next.Clone(), nil
}
