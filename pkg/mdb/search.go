package mdb

import "strings"

// Match 一条命中的记录及其序号。
// Ordinal 是记录在完整 Store 中的 1 起始位置（按加载顺序），
// 与之前命中了多少条无关。
type Match struct {
	Ordinal int
	Record  Record
}

// Search 按加载顺序线性扫描，返回 key 是 name 或 message
// 子串（区分大小写）的所有记录。空 key 命中所有记录。
func (s *Store) Search(key string) []Match {
	var matches []Match
	for i, rec := range s.records {
		if strings.Contains(rec.Name, key) || strings.Contains(rec.Message, key) {
			matches = append(matches, Match{Ordinal: i + 1, Record: rec})
		}
	}
	return matches
}
