package app

import (
	"bytes"
	"strings"
	"testing"
)

// TestRun_DemoCommand はデモモードが一連の操作を実行し、
// 結果JSONを出力して正常終了することを検証する。
func TestRun_DemoCommand(t *testing.T) {
	t.Setenv("SEED_ENABLED", "")
	t.Setenv("SANITIZE_ENABLED", "")

	var buf bytes.Buffer
	if err := Run(&buf, []string{"demo"}); err != nil {
		t.Fatalf("Run(demo) returned error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{`"current_user"`, `"feed"`, `"demo_deleted": true`} {
		if !strings.Contains(out, want) {
			t.Errorf("demo output should contain %s\noutput: %s", want, out)
		}
	}
}

// TestRun_DumpCommand はダンプモードがシード済み状態を出力することを検証する。
func TestRun_DumpCommand(t *testing.T) {
	t.Setenv("SEED_ENABLED", "")
	t.Setenv("SANITIZE_ENABLED", "")

	var buf bytes.Buffer
	if err := Run(&buf, []string{"dump"}); err != nil {
		t.Fatalf("Run(dump) returned error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, `"feed"`) || !strings.Contains(out, `"conversations"`) {
		t.Errorf("dump output should contain feed and conversations\noutput: %s", out)
	}
	if !strings.Contains(out, "sara_fashion") {
		t.Error("dump output should contain seeded data")
	}
}

// TestRun_DefaultCommand は引数なし起動がデモモードになることを検証する。
func TestRun_DefaultCommand(t *testing.T) {
	t.Setenv("SEED_ENABLED", "")
	t.Setenv("SANITIZE_ENABLED", "")

	var buf bytes.Buffer
	if err := Run(&buf, []string{}); err != nil {
		t.Fatalf("Run([]) returned error: %v", err)
	}
	if !strings.Contains(buf.String(), `"current_user"`) {
		t.Error("default command should run the demo")
	}
}

// TestRun_SeedDisabled_DemoFailsLogin はシード無効時にデモ用アカウントが
// 存在せず、エラーで終了することを検証する。
func TestRun_SeedDisabled_DemoFailsLogin(t *testing.T) {
	t.Setenv("SEED_ENABLED", "false")

	var buf bytes.Buffer
	if err := Run(&buf, []string{"demo"}); err == nil {
		t.Fatal("demo without seed data should fail to log in")
	}
}
