package main

import (
	"fmt"
	"os"
	"strconv"

	"mdb/pkg/config"
)

const configFile = "config.env"

// parseArgs 解析两个必选的位置参数：数据库文件路径和监听端口。
// 参数个数不对或端口非法时向 stderr 打印用法并以非零状态退出，
// 这一步发生在绑定端口之前。
func parseArgs() (string, int) {
	if len(os.Args) != 3 {
		fmt.Fprintf(os.Stderr, "Usage: %s <database_file> <port>\n", os.Args[0])
		os.Exit(1)
	}

	port, err := strconv.Atoi(os.Args[2])
	if err != nil || port < 1 || port > 65535 {
		fmt.Fprintf(os.Stderr, "invalid port %q: must be an integer in 1-65535\n", os.Args[2])
		os.Exit(1)
	}

	return os.Args[1], port
}

func loadServerConfig() *config.Config {
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	return cfg
}
