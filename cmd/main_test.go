package main

import (
	"context"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/okian/soundproof/internal/adapters/http/rpc"
	"github.com/okian/soundproof/internal/config"
	"github.com/okian/soundproof/internal/oracle"
	"github.com/smartystreets/goconvey/convey"
)

func TestMainFunction(t *testing.T) {
	convey.Convey("Given the main application", t, func() {
		convey.Convey("When testing configuration loading", func() {
			// Test with environment variables
			_ = os.Setenv("SOUNDPROOF_ADDR", ":8080")
			_ = os.Setenv("SOUNDPROOF_REDIS_ADDR", "redis:6379")
			defer func() {
				_ = os.Unsetenv("SOUNDPROOF_ADDR")
				_ = os.Unsetenv("SOUNDPROOF_REDIS_ADDR")
			}()

			convey.Convey("Then configuration should be loadable", func() {
				ctx := context.Background()
				cfg, err := config.Load(ctx)
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.RedisAddr, convey.ShouldEqual, "redis:6379")
			})
		})

		convey.Convey("When testing service creation", func() {
			convey.Convey("Then the oracle should be creatable with default options", func() {
				svc := oracle.New()
				convey.So(svc, convey.ShouldNotBeNil)
			})
		})

		convey.Convey("When testing HTTP server creation", func() {
			svc := oracle.New()
			mux := http.NewServeMux()
			server := rpc.NewServer(svc)
			server.Register(context.Background(), mux)

			srv := &http.Server{
				Addr:              ":0",
				Handler:           mux,
				ReadTimeout:       readTimeout,
				WriteTimeout:      writeTimeout,
				IdleTimeout:       idleTimeout,
				ReadHeaderTimeout: readHeaderTimeout,
			}

			convey.Convey("Then the server should be configured with timeouts", func() {
				convey.So(srv, convey.ShouldNotBeNil)
				convey.So(srv.ReadTimeout, convey.ShouldEqual, 10*time.Second)
				convey.So(srv.WriteTimeout, convey.ShouldEqual, 30*time.Second)
				convey.So(srv.Handler, convey.ShouldEqual, mux)
			})
		})
	})
}

func TestUpdateSystemMetrics(t *testing.T) {
	convey.Convey("Given the system metrics updater", t, func() {
		convey.Convey("When updating system metrics", func() {
			convey.Convey("Then it should not panic", func() {
				convey.So(updateSystemMetrics, convey.ShouldNotPanic)
			})
		})
	})
}
