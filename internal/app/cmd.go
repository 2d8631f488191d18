package app

// Command はアプリケーションの起動モードを表す。
type Command string

const (
	// CommandDemo はシードデータに対する一連の操作を実行し、
	// 各段階の状態をJSONで出力するデモモードを示す。
	CommandDemo Command = "demo"
	// CommandDump はシード済みの初期状態をJSONで出力することを示す。
	CommandDump Command = "dump"
)

// ParseCommand はコマンドライン引数からサブコマンドを解析する。
// 引数が空またはサポート外のコマンドの場合はCommandDemoを返す。
func ParseCommand(args []string) Command {
	if len(args) == 0 {
		return CommandDemo
	}

	switch args[0] {
	case "demo":
		return CommandDemo
	case "dump":
		return CommandDump
	default:
		return CommandDemo
	}
}
