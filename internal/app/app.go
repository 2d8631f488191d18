// Package app はアプリケーションの初期化と起動を担当する。
package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/hitoshi/stylati/internal/auth"
	"github.com/hitoshi/stylati/internal/config"
	"github.com/hitoshi/stylati/internal/logger"
	"github.com/hitoshi/stylati/internal/messaging"
	"github.com/hitoshi/stylati/internal/metrics"
	"github.com/hitoshi/stylati/internal/post"
	"github.com/hitoshi/stylati/internal/repository"
	"github.com/hitoshi/stylati/internal/security"
	"github.com/hitoshi/stylati/internal/seed"
	"github.com/hitoshi/stylati/internal/store"
	"github.com/hitoshi/stylati/internal/user"
)

// Init はアプリケーションの初期化を行う。
// 環境変数からConfigを読み込み、JSON構造化ログをセットアップする。
// writerが指定された場合はログ出力先としてそのwriterを使用する。
func Init(w io.Writer) *config.Config {
	cfg := config.Load()
	logger.SetupDefault(w, cfg.LogLevel)
	return cfg
}

// Run はアプリケーションのメインエントリーポイント。
// コマンドライン引数からサブコマンドを解析し、対応するモードで起動する。
// argsにはos.Args[1:]を渡す。
func Run(w io.Writer, args []string) error {
	cmd := ParseCommand(args)
	cfg := Init(w)

	slog.Info("アプリケーションを起動します",
		slog.String("command", string(cmd)),
		slog.Bool("seed_enabled", cfg.SeedEnabled),
		slog.Bool("sanitize_enabled", cfg.SanitizeEnabled),
	)

	switch cmd {
	case CommandDump:
		return runDump(w, cfg)
	default:
		return runDemo(w, cfg)
	}
}

// buildStore は全依存関係をワイヤリングしてStoreを構築する。
// 返されるRegistryにはStoreが記録する全メトリクスが登録済みである。
func buildStore(cfg *config.Config) (*store.Store, *prometheus.Registry, error) {
	// 1. リポジトリの初期化
	userRepo := repository.NewMemoryUserRepository()
	postRepo := repository.NewMemoryPostRepository()
	conversationRepo := repository.NewMemoryConversationRepository()

	// 2. シードデータの投入
	if cfg.SeedEnabled {
		if err := seed.Load(context.Background(), userRepo, postRepo, conversationRepo); err != nil {
			return nil, nil, fmt.Errorf("シードデータの投入に失敗しました: %w", err)
		}
	}

	// 3. セキュリティサービスの初期化
	var sanitizer security.ContentSanitizerService
	if cfg.SanitizeEnabled {
		sanitizer = security.NewContentSanitizer()
	} else {
		sanitizer = security.NewNopSanitizer()
	}

	// 4. ドメインサービスの初期化
	authService := auth.NewService(userRepo, sanitizer)
	postService := post.NewService(postRepo, userRepo, authService, sanitizer)
	messagingService := messaging.NewService(conversationRepo, userRepo, authService, sanitizer)
	userService := user.NewService(userRepo, postRepo, authService, sanitizer)

	// 5. メトリクスとストアファサードの構築
	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)

	return store.New(authService, postService, messagingService, userService, collector), registry, nil
}

// runDump はシード済みの初期状態をJSONで出力する。
func runDump(w io.Writer, cfg *config.Config) error {
	st, _, err := buildStore(cfg)
	if err != nil {
		return err
	}

	ctx := context.Background()
	return writeJSON(w, map[string]any{
		"feed":          st.Feed(ctx),
		"conversations": st.Conversations(ctx),
	})
}

// runDemo はシードデータに対する一連の操作を実行し、
// 各段階の結果をJSONで出力する。ストアの操作面を一通り通すため、
// 動作確認やログ・メトリクス配線の確認に使える。
func runDemo(w io.Writer, cfg *config.Config) error {
	st, _, err := buildStore(cfg)
	if err != nil {
		return err
	}

	ctx := context.Background()

	if ok := st.Login(ctx, "SARA_FASHION", "password123"); !ok {
		return fmt.Errorf("デモ用アカウントでログインできませんでした")
	}

	st.ToggleLike(ctx, 1)
	comment := st.AddComment(ctx, 1, "تنسيق رائع!")

	created := st.CreatePost(ctx, post.CreateInput{
		Description: "جاكيت جلد كلاسيكي بحالة ممتازة",
		ImageURL:    "https://picsum.photos/seed/demo/400/500",
		Price:       300,
		Brand:       "Zara",
		Category:    "جاكيتات",
	})
	if created == nil {
		return fmt.Errorf("デモ投稿を作成できませんでした")
	}

	conversation := st.StartConversation(ctx, 2)
	var message any
	if conversation != nil {
		message = st.SendMessage(ctx, conversation.ID, "شكراً على التعليق!")
	}

	profile := st.CurrentUser()
	profile.Bio = "بائعة أزياء مستعملة منذ 2020"
	updated := st.UpdateProfile(ctx, profile)

	token, ok := st.RequestDeletePost(ctx, created.ID)
	deleted := ok && st.ConfirmDeletePost(ctx, token, true)

	result := map[string]any{
		"current_user":  updated,
		"liked_post_1":  st.IsLiked(1),
		"comment":       comment,
		"demo_post_id":  created.ID,
		"demo_deleted":  deleted,
		"search_fustan": st.SearchPosts(ctx, "فستان"),
		"feed":          st.Feed(ctx),
		"conversation":  conversation,
		"message":       message,
	}

	st.Logout()
	return writeJSON(w, result)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("JSONの出力に失敗しました: %w", err)
	}
	return nil
}
