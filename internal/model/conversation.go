// Package model はドメインモデルを定義する。
package model

// Message はダイレクトメッセージを表す。追記専用。
// IDは作成時刻由来のミリ秒値で一意。
type Message struct {
	ID        int64
	SenderID  int
	Text      string
	Timestamp string
}

// Clone はMessageの独立したコピーを返す。
func (m *Message) Clone() *Message {
	if m == nil {
		return nil
	}
	cp := *m
	return &cp
}

// Conversation はセッションユーザーと相手ユーザーとの会話スレッドを表す。
// セッションユーザー側の識別は暗黙であり、会話には保存しない。
// Userは相手側ユーザーのスナップショット。
type Conversation struct {
	ID       int
	User     *User
	Messages []*Message
}

// Clone はConversationの独立したコピーを返す。メッセージ列も複製する。
func (c *Conversation) Clone() *Conversation {
	if c == nil {
		return nil
	}
	cp := *c
	cp.User = c.User.Clone()
	if c.Messages != nil {
		cp.Messages = make([]*Message, len(c.Messages))
		for i, m := range c.Messages {
			cp.Messages[i] = m.Clone()
		}
	}
	return &cp
}

// LastMessage は会話の最新メッセージを返す。メッセージが無い場合はnil。
func (c *Conversation) LastMessage() *Message {
	if len(c.Messages) == 0 {
		return nil
	}
	return c.Messages[len(c.Messages)-1]
}
