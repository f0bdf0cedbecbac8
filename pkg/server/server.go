package server

import (
	"errors"
	"fmt"
	"net"

	"mdb/log"
	"mdb/pkg/config"
)

// Server mdb-lookup 服务器：串行接受连接，每个连接跑完一个会话
// 再接受下一个。会话之间不共享任何状态，数据库文件每个会话
// 重新加载一次。
type Server struct {
	dbPath string
	cfg    *config.ServerConfig
}

// NewServer 创建服务器。dbPath 指向定宽记录数据库文件
func NewServer(dbPath string, cfg *config.ServerConfig) *Server {
	return &Server{
		dbPath: dbPath,
		cfg:    cfg,
	}
}

// ListenAndServe 在 addr 上监听并开始服务。
// 绑定失败直接返回错误，由调用方决定是否退出进程；
// 绑定成功后本函数只在监听套接字被关闭时返回。
func (s *Server) ListenAndServe(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	defer ln.Close()
	return s.Serve(ln)
}

// Serve 在已有的监听器上跑接受循环（测试用 :0 端口时走这里）。
// accept 失败只记录日志并继续；进程退出只保留给绑定失败
// 这种完全无法服务的情况。
func (s *Server) Serve(ln net.Listener) error {
	log.Printf("mdb-lookup server listening on %s", ln.Addr())

	for {
		conn, err := ln.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			log.Printf("accept failed: %v", err)
			continue
		}

		peer := conn.RemoteAddr().String()
		log.Printf("connection established with %s", peer)

		// 严格串行：当前会话结束前不接受下一个连接
		s.handleSession(conn)

		log.Printf("connection terminated from %s", peer)
	}
}
