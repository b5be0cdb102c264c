// Package router は運用向けHTTPエンドポイント（ヘルスチェック・メトリクス）のルーティングを定義します。
// 業務APIはgRPCで提供するため、ここには含めません。
package router

import (
	"net/http"
	"time"

	"symbol_catalog/internal/platform/http/handler"

	"github.com/gin-gonic/gin"
)

// readyTimeout は /readyz の疎通確認に許す最大時間です。
const readyTimeout = 2 * time.Second

// NewRouter は運用エンドポイントを登録したgin.Engineを返します。
// metrics が nil の場合、/metrics は登録しません。
func NewRouter(ping handler.Pinger, metrics http.Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	// 導通確認用（プロセスが生きているか）
	r.GET("/healthz", handler.Health)
	r.HEAD("/healthz", handler.Health)
	r.OPTIONS("/healthz", handler.Health)

	// 依存先（DB）に到達できるか
	r.GET("/readyz", handler.Ready(ping, readyTimeout))

	if metrics != nil {
		r.GET("/metrics", gin.WrapH(metrics))
	}

	return r
}
