package repository

import (
	"context"
	"sync"
	"time"

	"github.com/samber/lo"

	"github.com/hitoshi/stylati/internal/model"
)

// MemoryConversationRepository はConversationRepositoryのインメモリ実装。
// 会話リストは直近アクティブ順を保持する。
type MemoryConversationRepository struct {
	mu            sync.RWMutex
	conversations []*model.Conversation
	nextID        int
	lastMessageID int64
	nowFn         func() time.Time
}

// NewMemoryConversationRepository は空のMemoryConversationRepositoryを生成する。
func NewMemoryConversationRepository() *MemoryConversationRepository {
	return &MemoryConversationRepository{
		nextID: 1,
		nowFn:  time.Now,
	}
}

// FindByID は指定IDの会話を取得する。見つからない場合はnilを返す。
func (r *MemoryConversationRepository) FindByID(ctx context.Context, id int) (*model.Conversation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := lo.Find(r.conversations, func(c *model.Conversation) bool { return c.ID == id })
	if !ok {
		return nil, nil
	}
	return c.Clone(), nil
}

// FindByCounterpartID は相手ユーザーIDで会話を検索する。見つからない場合はnilを返す。
func (r *MemoryConversationRepository) FindByCounterpartID(ctx context.Context, userID int) (*model.Conversation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := lo.Find(r.conversations, func(c *model.Conversation) bool { return c.User.ID == userID })
	if !ok {
		return nil, nil
	}
	return c.Clone(), nil
}

// Create は会話を作成し、会話リストの先頭に挿入する。
func (r *MemoryConversationRepository) Create(ctx context.Context, conversation *model.Conversation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if conversation.ID == 0 {
		conversation.ID = r.nextID
	}
	if conversation.ID >= r.nextID {
		r.nextID = conversation.ID + 1
	}
	for _, m := range conversation.Messages {
		if m.ID > r.lastMessageID {
			r.lastMessageID = m.ID
		}
	}
	r.conversations = append([]*model.Conversation{conversation.Clone()}, r.conversations...)
	return nil
}

// List は全会話を直近アクティブ順で返す。
func (r *MemoryConversationRepository) List(ctx context.Context) ([]*model.Conversation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return lo.Map(r.conversations, func(c *model.Conversation, _ int) *model.Conversation { return c.Clone() }), nil
}

// AppendMessage は指定会話へメッセージを追記し、その会話をリスト先頭へ移動する。
// 対象が存在しない場合はmodel.APIError(CONVERSATION_NOT_FOUND)を返す。
// メッセージIDは作成時刻のミリ秒値だが、同一ミリ秒内の連続送信でも
// 重複しないよう直前のIDより必ず大きい値を採番する。
func (r *MemoryConversationRepository) AppendMessage(ctx context.Context, conversationID int, message *model.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, i, ok := lo.FindIndexOf(r.conversations, func(c *model.Conversation) bool { return c.ID == conversationID })
	if !ok {
		return model.NewConversationNotFoundError(conversationID)
	}

	if message.ID == 0 {
		id := r.nowFn().UnixMilli()
		if id <= r.lastMessageID {
			id = r.lastMessageID + 1
		}
		message.ID = id
	}
	if message.ID > r.lastMessageID {
		r.lastMessageID = message.ID
	}

	c := r.conversations[i].Clone()
	c.Messages = append(c.Messages, message.Clone())

	// 直近アクティブ順: 更新された会話を先頭へ
	r.conversations = append(r.conversations[:i], r.conversations[i+1:]...)
	r.conversations = append([]*model.Conversation{c}, r.conversations...)
	return nil
}
