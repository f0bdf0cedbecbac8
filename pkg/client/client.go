package client

import (
	"bufio"
	"fmt"
	"net"
	"strings"
	"time"
)

// Client mdb-lookup 客户端：一条 TCP 连接，多次查询复用。
// 协议为按行文本：发一行关键字，收零或多行结果，
// 以单独的空行表示一次响应结束。
type Client struct {
	conn   net.Conn
	reader *bufio.Reader
}

// Dial 连接到服务器
func Dial(addr string, timeout time.Duration) (*Client, error) {
	conn, err := net.DialTimeout("tcp", addr, timeout)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", addr, err)
	}
	return &Client{
		conn:   conn,
		reader: bufio.NewReader(conn),
	}, nil
}

// Lookup 发送一条查询，读取到空行标记为止，返回结果行（不含空行）。
// 空行出现前连接被关闭视为错误。
func (c *Client) Lookup(key string) ([]string, error) {
	if _, err := fmt.Fprintln(c.conn, key); err != nil {
		return nil, fmt.Errorf("failed to send query: %w", err)
	}

	var results []string
	for {
		line, err := c.reader.ReadString('\n')
		if err != nil {
			return nil, fmt.Errorf("connection closed before end of results: %w", err)
		}
		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			return results, nil
		}
		results = append(results, line)
	}
}

// Close 关闭连接
func (c *Client) Close() error {
	return c.conn.Close()
}
