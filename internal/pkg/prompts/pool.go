package prompts

import (
	log "log/slog"
	"math/rand"
	"os"

	"gopkg.in/yaml.v3"
)

// fallbackPool 内置题库，题库文件缺失或非法时兜底
var fallbackPool = []string{
	"Name one thing you did today that cared for your body.",
	"What energized you this morning?",
	"Who in your community could use a check-in?",
}

// Pool 每日一问题库
type Pool struct {
	texts []string
}

// LoadPool 从 yaml 文件（字符串数组）加载题库，任何失败都回退到内置题库
func LoadPool(path string) *Pool {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn("Failed to read prompt pool, using fallback", "path", path, "err", err)
		}
		return &Pool{texts: fallbackPool}
	}

	var texts []string
	if err = yaml.Unmarshal(data, &texts); err != nil {
		log.Warn("Prompt pool must be a yaml list of strings, using fallback", "path", path, "err", err)
		return &Pool{texts: fallbackPool}
	}

	for _, t := range texts {
		if t == "" {
			log.Warn("Prompt pool contains empty entries, using fallback", "path", path)
			return &Pool{texts: fallbackPool}
		}
	}
	if len(texts) == 0 {
		return &Pool{texts: fallbackPool}
	}

	return &Pool{texts: texts}
}

// Pick 均匀随机取一条
func (p *Pool) Pick() string {
	return p.texts[rand.Intn(len(p.texts))]
}

// Texts 只读访问（测试用）
func (p *Pool) Texts() []string {
	return p.texts
}
