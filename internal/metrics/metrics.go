// Package metrics はPrometheusメトリクスの収集と公開を提供する。
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsCollector はメトリクス収集のインターフェース。
// ストアのファサード層から操作ごとに呼ばれる。
type MetricsCollector interface {
	RecordLogin(success bool)
	RecordSignUp(success bool)
	RecordPostCreated()
	RecordPostDeleted()
	RecordLikeToggled(liked bool)
	RecordCommentAdded()
	RecordConversationStarted()
	RecordMessageSent()
	RecordProfileUpdated()
}

// Collector はPrometheusメトリクスを収集する実装。
type Collector struct {
	logins         *prometheus.CounterVec
	signups        *prometheus.CounterVec
	postsCreated   prometheus.Counter
	postsDeleted   prometheus.Counter
	likesToggled   *prometheus.CounterVec
	comments       prometheus.Counter
	conversations  prometheus.Counter
	messages       prometheus.Counter
	profileUpdates prometheus.Counter
}

// NewCollector は新しいCollectorを生成し、指定されたレジストリにメトリクスを登録する。
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "stylati_logins_total",
			Help: "ログイン試行の合計数（結果別）",
		}, []string{"result"}),
		signups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "stylati_signups_total",
			Help: "サインアップ試行の合計数（結果別）",
		}, []string{"result"}),
		postsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "stylati_posts_created_total",
			Help: "作成された投稿の合計数",
		}),
		postsDeleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "stylati_posts_deleted_total",
			Help: "削除された投稿の合計数",
		}),
		likesToggled: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "stylati_likes_toggled_total",
			Help: "いいねトグルの合計数（反転後の状態別）",
		}, []string{"state"}),
		comments: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "stylati_comments_total",
			Help: "追加されたコメントの合計数",
		}),
		conversations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "stylati_conversations_started_total",
			Help: "新規に開始された会話の合計数",
		}),
		messages: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "stylati_messages_sent_total",
			Help: "送信されたメッセージの合計数",
		}),
		profileUpdates: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "stylati_profile_updates_total",
			Help: "プロフィール更新の合計数",
		}),
	}

	reg.MustRegister(
		c.logins,
		c.signups,
		c.postsCreated,
		c.postsDeleted,
		c.likesToggled,
		c.comments,
		c.conversations,
		c.messages,
		c.profileUpdates,
	)

	return c
}

func result(success bool) string {
	if success {
		return "success"
	}
	return "failure"
}

// RecordLogin はログイン試行を記録する。
func (c *Collector) RecordLogin(success bool) {
	c.logins.WithLabelValues(result(success)).Inc()
}

// RecordSignUp はサインアップ試行を記録する。
func (c *Collector) RecordSignUp(success bool) {
	c.signups.WithLabelValues(result(success)).Inc()
}

// RecordPostCreated は投稿作成を記録する。
func (c *Collector) RecordPostCreated() {
	c.postsCreated.Inc()
}

// RecordPostDeleted は投稿削除を記録する。
func (c *Collector) RecordPostDeleted() {
	c.postsDeleted.Inc()
}

// RecordLikeToggled はいいねトグルを記録する。
func (c *Collector) RecordLikeToggled(liked bool) {
	state := "unliked"
	if liked {
		state = "liked"
	}
	c.likesToggled.WithLabelValues(state).Inc()
}

// RecordCommentAdded はコメント追加を記録する。
func (c *Collector) RecordCommentAdded() {
	c.comments.Inc()
}

// RecordConversationStarted は会話開始を記録する。
func (c *Collector) RecordConversationStarted() {
	c.conversations.Inc()
}

// RecordMessageSent はメッセージ送信を記録する。
func (c *Collector) RecordMessageSent() {
	c.messages.Inc()
}

// RecordProfileUpdated はプロフィール更新を記録する。
func (c *Collector) RecordProfileUpdated() {
	c.profileUpdates.Inc()
}

// Handler は指定レジストリのメトリクスを公開するHTTPハンドラを返す。
// 本リポジトリ自体はサーバを持たないため、公開は利用側に委ねる。
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

// Nop は何も記録しないMetricsCollectorの実装。テストや無効化時に使う。
type Nop struct{}

func (Nop) RecordLogin(bool)           {}
func (Nop) RecordSignUp(bool)          {}
func (Nop) RecordPostCreated()         {}
func (Nop) RecordPostDeleted()         {}
func (Nop) RecordLikeToggled(bool)     {}
func (Nop) RecordCommentAdded()        {}
func (Nop) RecordConversationStarted() {}
func (Nop) RecordMessageSent()         {}
func (Nop) RecordProfileUpdated()      {}
