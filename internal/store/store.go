// Package store はドメイン状態ストアのファサードを提供する。
//
// Storeはユーザー・投稿・会話・セッションの4コレクションに対する
// 唯一の操作面であり、プロセスごとに1回構築してビュー層へ参照渡しする。
// グローバル変数としては公開しない。
//
// エラーポリシー: ログイン・サインアップの失敗は真偽値で返し、
// その他の操作は前提条件を満たさない場合に例外を投げず
// 「静かに何もしない（ゼロ値を返す）」。原因は構造化ログに記録される。
// 全操作は同期的で、適用されるか全く適用されないかのどちらかである。
package store

import (
	"context"
	"log/slog"

	"github.com/hitoshi/stylati/internal/auth"
	"github.com/hitoshi/stylati/internal/messaging"
	"github.com/hitoshi/stylati/internal/metrics"
	"github.com/hitoshi/stylati/internal/model"
	"github.com/hitoshi/stylati/internal/post"
	"github.com/hitoshi/stylati/internal/user"
)

// Store はドメイン状態ストアのファサード。
type Store struct {
	auth      *auth.Service
	posts     *post.Service
	messaging *messaging.Service
	profile   *user.Service
	collector metrics.MetricsCollector
}

// New はStoreを生成する。collectorがnilの場合は何も記録しない。
func New(
	authSvc *auth.Service,
	postSvc *post.Service,
	messagingSvc *messaging.Service,
	profileSvc *user.Service,
	collector metrics.MetricsCollector,
) *Store {
	if collector == nil {
		collector = metrics.Nop{}
	}
	return &Store{
		auth:      authSvc,
		posts:     postSvc,
		messaging: messagingSvc,
		profile:   profileSvc,
		collector: collector,
	}
}

// Login はユーザー名（大文字小文字を区別しない）とパスワードで認証する。
// 成功時はセッションを確立しtrueを、失敗時はfalseを返す。
func (s *Store) Login(ctx context.Context, username, password string) bool {
	_, err := s.auth.Login(ctx, username, password)
	ok := err == nil
	if !ok {
		slog.Warn("ログインに失敗しました", slog.String("username", username), slog.Any("error", err))
	}
	s.collector.RecordLogin(ok)
	return ok
}

// SignUp は新規ユーザーを作成し、そのままログインする。
// ユーザー名が衝突する場合はfalseを返し、状態を変更しない。
func (s *Store) SignUp(ctx context.Context, fullName, username, password string) bool {
	_, err := s.auth.SignUp(ctx, fullName, username, password)
	ok := err == nil
	if !ok {
		slog.Warn("サインアップに失敗しました", slog.String("username", username), slog.Any("error", err))
	}
	s.collector.RecordSignUp(ok)
	return ok
}

// Logout はセッションを破棄する。他のコレクションは変更しない。
func (s *Store) Logout() {
	s.auth.Logout()
}

// CurrentUser はセッションユーザーのコピーを返す。未認証の場合はnil。
func (s *Store) CurrentUser() *model.User {
	return s.auth.CurrentUser()
}

// IsAuthenticated は認証済みセッションが存在するかを返す。
func (s *Store) IsAuthenticated() bool {
	return s.auth.Session() != nil
}

// CreatePost は投稿を作成しフィードの先頭へ挿入した上で返す。
// 前提条件（認証済み、説明が空でない、画像URLが解決済み）を
// 満たさない場合はnilを返す。
func (s *Store) CreatePost(ctx context.Context, in post.CreateInput) *model.Post {
	p, err := s.posts.Create(ctx, in)
	if err != nil {
		slog.Warn("投稿を作成できませんでした", slog.Any("error", err))
		return nil
	}
	s.collector.RecordPostCreated()
	return p
}

// RequestDeletePost は削除プロトコルの第1段階として確認トークンを発行する。
// セッションユーザーが所有しない投稿に対してはfalseを返す。
func (s *Store) RequestDeletePost(ctx context.Context, postID int) (string, bool) {
	token, err := s.posts.RequestDelete(ctx, postID)
	if err != nil {
		slog.Warn("削除リクエストを受け付けられませんでした", slog.Int("post_id", postID), slog.Any("error", err))
		return "", false
	}
	return token, true
}

// ConfirmDeletePost は削除プロトコルの第2段階。
// confirmedがtrueの場合のみ削除を適用し、削除された場合trueを返す。
func (s *Store) ConfirmDeletePost(ctx context.Context, token string, confirmed bool) bool {
	deleted, err := s.posts.ConfirmDelete(ctx, token, confirmed)
	if err != nil {
		slog.Warn("削除を確定できませんでした", slog.Any("error", err))
		return false
	}
	if deleted {
		s.collector.RecordPostDeleted()
	}
	return deleted
}

// ToggleLike はセッションのいいね集合内の所属を反転し、
// 投稿のいいね数をちょうど1だけ増減する。
// 投稿が存在しない場合や未認証の場合は何もしない。
func (s *Store) ToggleLike(ctx context.Context, postID int) {
	liked, err := s.posts.ToggleLike(ctx, postID)
	if err != nil {
		slog.Warn("いいねを切り替えられませんでした", slog.Int("post_id", postID), slog.Any("error", err))
		return
	}
	s.collector.RecordLikeToggled(liked)
}

// IsLiked はセッションユーザーが指定投稿をいいね済みかを返す。
// 未認証の場合はfalse。
func (s *Store) IsLiked(postID int) bool {
	session := s.auth.Session()
	if session == nil {
		return false
	}
	return session.Likes(postID)
}

// AddComment は投稿へセッションユーザー名義のコメントを追記して返す。
// 前提条件を満たさない場合はnilを返す。
func (s *Store) AddComment(ctx context.Context, postID int, text string) *model.Comment {
	c, err := s.posts.AddComment(ctx, postID, text)
	if err != nil {
		slog.Warn("コメントを追加できませんでした", slog.Int("post_id", postID), slog.Any("error", err))
		return nil
	}
	s.collector.RecordCommentAdded()
	return c
}

// StartConversation は相手ユーザーとの会話を返す。
// 既存の会話があればそれを返し、無ければ作成する。
// 相手が自分自身の場合や未認証の場合はnilを返す。
func (s *Store) StartConversation(ctx context.Context, targetUserID int) *model.Conversation {
	c, created, err := s.messaging.Start(ctx, targetUserID)
	if err != nil {
		slog.Warn("会話を開始できませんでした", slog.Int("target_user_id", targetUserID), slog.Any("error", err))
		return nil
	}
	if created {
		s.collector.RecordConversationStarted()
	}
	return c
}

// SendMessage は会話へセッションユーザー名義のメッセージを追記して返す。
// 前提条件を満たさない場合はnilを返す。
func (s *Store) SendMessage(ctx context.Context, conversationID int, text string) *model.Message {
	m, err := s.messaging.Send(ctx, conversationID, text)
	if err != nil {
		slog.Warn("メッセージを送信できませんでした", slog.Int("conversation_id", conversationID), slog.Any("error", err))
		return nil
	}
	s.collector.RecordMessageSent()
	return m
}

// UpdateProfile はセッションユーザー自身のプロフィールを更新して返す。
// ユーザー名の変更は無視される。セッションユーザー以外のIDが
// 指定された場合はnilを返し、状態を変更しない。
func (s *Store) UpdateProfile(ctx context.Context, updated *model.User) *model.User {
	u, err := s.profile.UpdateProfile(ctx, updated)
	if err != nil {
		slog.Warn("プロフィールを更新できませんでした", slog.Any("error", err))
		return nil
	}
	s.collector.RecordProfileUpdated()
	return u
}

// Feed は全投稿を新しい順で返す。
func (s *Store) Feed(ctx context.Context) []*model.Post {
	posts, err := s.posts.Feed(ctx)
	if err != nil {
		slog.Warn("フィードを取得できませんでした", slog.Any("error", err))
		return nil
	}
	return posts
}

// PostsByUser は指定ユーザーが所有する投稿をフィード順で返す。
func (s *Store) PostsByUser(ctx context.Context, userID int) []*model.Post {
	posts, err := s.posts.ListByUser(ctx, userID)
	if err != nil {
		slog.Warn("ユーザーの投稿を取得できませんでした", slog.Int("user_id", userID), slog.Any("error", err))
		return nil
	}
	return posts
}

// SearchPosts は説明・ブランド・カテゴリへの部分一致で投稿を検索する。
// 空白のみのクエリは空の結果を返す。
func (s *Store) SearchPosts(ctx context.Context, query string) []*model.Post {
	posts, err := s.posts.Search(ctx, query)
	if err != nil {
		slog.Warn("投稿を検索できませんでした", slog.Any("error", err))
		return nil
	}
	return posts
}

// Conversations は全会話を直近アクティブ順で返す。
func (s *Store) Conversations(ctx context.Context) []*model.Conversation {
	conversations, err := s.messaging.List(ctx)
	if err != nil {
		slog.Warn("会話リストを取得できませんでした", slog.Any("error", err))
		return nil
	}
	return conversations
}
