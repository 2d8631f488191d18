// Package auth はログイン・サインアップ・セッション管理を提供する。
//
// セッションの状態機械は {Anonymous, Authenticated(user)} の2状態。
// Login/SignUp成功でAuthenticatedへ、LogoutでAnonymousへ遷移する。
// 認証は模擬であり、パスワードは平文の完全一致で検証する（スコープ外: 本物の認証）。
package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hitoshi/stylati/internal/model"
	"github.com/hitoshi/stylati/internal/repository"
	"github.com/hitoshi/stylati/internal/security"
)

// 新規ユーザーの既定プロフィール値。元アプリの既定値と同一。
const (
	defaultBio          = "مرحباً! أنا عضو جديد في ستايلاتي."
	defaultAvatarURLFmt = "https://picsum.photos/seed/%d/200/200"
)

// Service は認証とセッションに関するビジネスロジックを提供する。
// セッションは単一プロセス・単一ユーザーのインメモリ状態で、
// 同時に認証済みとなるユーザーは最大1人。
type Service struct {
	users     repository.UserRepository
	sanitizer security.ContentSanitizerService
	session   *model.Session
}

// NewService はServiceを生成する。
func NewService(users repository.UserRepository, sanitizer security.ContentSanitizerService) *Service {
	return &Service{
		users:     users,
		sanitizer: sanitizer,
	}
}

// Login はユーザー名（大文字小文字を区別しない）とパスワード（完全一致）で
// 認証し、成功した場合はセッションを確立してユーザーを返す。
// ユーザー不在とパスワード不一致はいずれもINVALID_CREDENTIALSになる。
func (s *Service) Login(ctx context.Context, username, password string) (*model.User, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("ユーザーの検索に失敗しました: %w", err)
	}
	if user == nil || user.Password != password {
		return nil, model.NewInvalidCredentialsError()
	}

	s.session = model.NewSession(user)
	slog.Info("ユーザーがログインしました",
		slog.Int("user_id", user.ID),
		slog.String("username", user.Username),
	)
	return user.Clone(), nil
}

// SignUp は新規ユーザーを作成し、そのままログインする。
// 大文字小文字を区別しない比較でユーザー名が衝突する場合は
// USERNAME_TAKENを返し、コレクションを変更しない。
// カウンタはゼロ、プロフィール文とアバターは既定値で初期化される。
func (s *Service) SignUp(ctx context.Context, fullName, username, password string) (*model.User, error) {
	existing, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("ユーザーの検索に失敗しました: %w", err)
	}
	if existing != nil {
		return nil, model.NewUsernameTakenError(username)
	}

	user := &model.User{
		Username: username,
		Password: password,
		FullName: s.sanitizer.Sanitize(fullName),
		Bio:      defaultBio,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("ユーザーの作成に失敗しました: %w", err)
	}

	// アバターURLは採番済みIDに依存するため作成後に確定する
	user.AvatarURL = fmt.Sprintf(defaultAvatarURLFmt, user.ID)
	if err := s.users.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("ユーザーの更新に失敗しました: %w", err)
	}

	s.session = model.NewSession(user)
	slog.Info("新規ユーザーを登録しました",
		slog.Int("user_id", user.ID),
		slog.String("username", user.Username),
	)
	return user.Clone(), nil
}

// Logout はセッションを破棄しAnonymous状態へ戻す。
// 他のコレクションは変更しない。未認証状態で呼ばれた場合は何もしない。
func (s *Service) Logout() {
	if s.session == nil {
		return
	}
	slog.Info("ユーザーがログアウトしました", slog.Int("user_id", s.session.User.ID))
	s.session = nil
}

// Session は現在のセッションを返す。Anonymous状態ではnil。
func (s *Service) Session() *model.Session {
	return s.session
}

// CurrentUser はセッションユーザーのコピーを返す。Anonymous状態ではnil。
func (s *Service) CurrentUser() *model.User {
	if s.session == nil {
		return nil
	}
	return s.session.User.Clone()
}
