// Package messaging はダイレクトメッセージのドメインロジックを提供する。
// 会話の遅延作成、メッセージ送信、直近アクティブ順の会話リストを担当する。
package messaging

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/hitoshi/stylati/internal/model"
	"github.com/hitoshi/stylati/internal/repository"
	"github.com/hitoshi/stylati/internal/security"
)

// SessionSource は現在のセッションを提供する。
// Anonymous状態ではnilを返す。
type SessionSource interface {
	Session() *model.Session
}

// Service は会話とメッセージに関するビジネスロジックを提供する。
type Service struct {
	conversations repository.ConversationRepository
	users         repository.UserRepository
	sessions      SessionSource
	sanitizer     security.ContentSanitizerService
}

// NewService はServiceを生成する。
func NewService(
	conversations repository.ConversationRepository,
	users repository.UserRepository,
	sessions SessionSource,
	sanitizer security.ContentSanitizerService,
) *Service {
	return &Service{
		conversations: conversations,
		users:         users,
		sessions:      sessions,
		sanitizer:     sanitizer,
	}
}

// Start は相手ユーザーとの会話を返す。
// 会話の同一性は相手の同一性で判定し、既存の会話があればそれを返す。
// 無ければ空のメッセージ列を持つ会話を作成し会話リストの先頭へ挿入する。
// 2番目の戻り値は会話が新規作成されたかを示す。
// セッションユーザー自身を相手に指定することはできない。
func (s *Service) Start(ctx context.Context, targetUserID int) (*model.Conversation, bool, error) {
	session := s.sessions.Session()
	if session == nil {
		return nil, false, model.NewNotAuthenticatedError()
	}
	if targetUserID == session.User.ID {
		return nil, false, model.NewSelfConversationError()
	}

	existing, err := s.conversations.FindByCounterpartID(ctx, targetUserID)
	if err != nil {
		return nil, false, fmt.Errorf("会話の検索に失敗しました: %w", err)
	}
	if existing != nil {
		return existing, false, nil
	}

	target, err := s.users.FindByID(ctx, targetUserID)
	if err != nil {
		return nil, false, fmt.Errorf("ユーザーの取得に失敗しました: %w", err)
	}
	if target == nil {
		return nil, false, model.NewUserNotFoundError(targetUserID)
	}

	conversation := &model.Conversation{
		User:     target.Clone(),
		Messages: []*model.Message{},
	}
	if err := s.conversations.Create(ctx, conversation); err != nil {
		return nil, false, fmt.Errorf("会話の作成に失敗しました: %w", err)
	}

	slog.Info("会話を開始しました",
		slog.Int("conversation_id", conversation.ID),
		slog.Int("user_id", session.User.ID),
		slog.Int("counterpart_id", targetUserID),
	)
	return conversation.Clone(), true, nil
}

// Send は指定会話へセッションユーザー名義のメッセージを追記する。
// 認証済みセッションと、トリム後に空でないテキストを要求する。
// 送信後、その会話は会話リストの先頭（直近アクティブ）へ移動する。
func (s *Service) Send(ctx context.Context, conversationID int, text string) (*model.Message, error) {
	session := s.sessions.Session()
	if session == nil {
		return nil, model.NewNotAuthenticatedError()
	}

	text = s.sanitizer.Sanitize(strings.TrimSpace(text))
	if text == "" {
		return nil, model.NewEmptyContentError()
	}

	message := &model.Message{
		SenderID:  session.User.ID,
		Text:      text,
		Timestamp: model.TimestampNow,
	}
	if err := s.conversations.AppendMessage(ctx, conversationID, message); err != nil {
		return nil, err
	}

	slog.Info("メッセージを送信しました",
		slog.Int("conversation_id", conversationID),
		slog.Int("sender_id", session.User.ID),
	)
	return message.Clone(), nil
}

// List は全会話を直近アクティブ順で返す。
func (s *Service) List(ctx context.Context) ([]*model.Conversation, error) {
	return s.conversations.List(ctx)
}
