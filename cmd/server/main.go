package main

import (
	"os"

	"mdb/log"
	"mdb/pkg/server"
)

func main() {
	dbPath, port := parseArgs()
	cfg := loadServerConfig()

	srv := server.NewServer(dbPath, &cfg.Server)

	// 绑定失败是唯一保留给进程退出的错误
	if err := srv.ListenAndServe(cfg.GetListenAddr(port)); err != nil {
		log.Printf("server failed: %v", err)
		os.Exit(1)
	}
}
