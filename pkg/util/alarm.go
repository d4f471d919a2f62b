package util

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/ChainSafe/log15"
)

const silence = 300 // seconds an identical alarm is suppressed

var (
	Env     = ""
	monitor = make(map[string]int64)
	lock    sync.Mutex
)

func init() {
	Env = os.Getenv("deployconf")
}

// Alarm posts msg to the webhook configured in the hooks environment variable
func Alarm(ctx context.Context, msg string) {
	hooksUrl := os.Getenv("hooks")
	if hooksUrl == "" {
		log15.Debug("hooks is empty")
		return
	}
	if !due(msg, time.Now().Unix()) {
		return
	}
	body, err := json.Marshal(map[string]interface{}{
		"text": fmt.Sprintf("%s %s", Env, msg),
	})
	if err != nil {
		return
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, hooksUrl, bytes.NewReader(body))
	if err != nil {
		return
	}
	req.Header.Set("Content-type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		log15.Warn("send alarm failed", "err", err)
		return
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		log15.Warn("read resp failed", "err", err)
		return
	}
	log15.Info("send alarm message", "resp", string(data))
}

func due(msg string, now int64) bool {
	lock.Lock()
	defer lock.Unlock()
	if v, ok := monitor[msg]; ok && now-v < silence {
		return false
	}
	monitor[msg] = now
	return true
}
