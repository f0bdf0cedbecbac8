package server

import (
	"bufio"
	"fmt"
	"io"
	"net"
	"time"

	"mdb/log"
	"mdb/pkg/config"
	"mdb/pkg/mdb"
)

// session 单个客户端连接的生命周期：
// 加载 Store → 循环 { 读一行查询 → 写结果 } → 关闭。
// 任何会话内的错误只结束本会话，绝不影响接受循环。
type session struct {
	conn   net.Conn
	store  *mdb.Store
	reader *bufio.Reader

	maxKeyLength int
	idleTimeout  time.Duration
}

// handleSession 为一个已接受的连接跑完整个会话。
// 数据库加载失败只结束本会话，服务器继续接受后续连接。
func (s *Server) handleSession(conn net.Conn) {
	defer conn.Close()

	store, err := mdb.Load(s.dbPath)
	if err != nil {
		log.Printf("session aborted, failed to load database: %v", err)
		return
	}

	maxLine := s.cfg.MaxLineBytes
	if maxLine <= 0 {
		maxLine = config.DefaultMaxLineBytes
	}

	sess := &session{
		conn:         conn,
		store:        store,
		reader:       bufio.NewReaderSize(conn, maxLine),
		maxKeyLength: s.cfg.MaxKeyLength,
		idleTimeout:  s.cfg.IdleTimeout,
	}
	sess.run()
}

func (sess *session) run() {
	for {
		key, ok := sess.readQuery()
		if !ok {
			return
		}
		if !sess.respond(key) {
			return
		}
	}
}

// readQuery 阻塞等待一行查询。返回 false 表示会话结束：
// 客户端关闭写端（正常）、读错误或空闲超时（记日志）。
func (sess *session) readQuery() (string, bool) {
	if sess.idleTimeout > 0 {
		sess.conn.SetReadDeadline(time.Now().Add(sess.idleTimeout))
	}

	line, isPrefix, err := sess.reader.ReadLine()
	if err != nil {
		if err != io.EOF {
			log.Printf("read from %s failed: %v", sess.conn.RemoteAddr(), err)
		}
		return "", false
	}

	key := string(line)

	// 行超出缓冲区：截断到缓冲区容量，把该行剩余部分读掉丢弃，
	// 避免被当成下一条查询。已知局限。
	for isPrefix {
		_, isPrefix, err = sess.reader.ReadLine()
		if err != nil {
			break
		}
	}

	// 查询关键字截断到配置的上限（默认 5）
	if sess.maxKeyLength > 0 && len(key) > sess.maxKeyLength {
		key = key[:sess.maxKeyLength]
	}
	return key, true
}

// respond 写出所有命中记录，再写一个空行作为结果结束标记。
// 写失败（对端重置、broken pipe）时放弃剩余输出并结束会话，
// 返回 false；这类错误不向上传播。
func (sess *session) respond(key string) bool {
	for _, m := range sess.store.Search(key) {
		line := fmt.Sprintf("%4d: {%s} said {%s}\n", m.Ordinal, m.Record.Name, m.Record.Message)
		if _, err := io.WriteString(sess.conn, line); err != nil {
			log.Printf("send to %s failed: %v", sess.conn.RemoteAddr(), err)
			return false
		}
	}

	// 零命中时也要发空行，客户端靠它判断一次响应结束
	if _, err := io.WriteString(sess.conn, "\n"); err != nil {
		log.Printf("send to %s failed: %v", sess.conn.RemoteAddr(), err)
		return false
	}
	return true
}
