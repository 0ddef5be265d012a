// Command mockserver runs an in-memory marketplace backend for local
// development: seeded users and listings, real JWT auth, decimal-exact
// balance transfers. Nothing survives a restart.
package main

import (
	"flag"
	"fmt"
	"net/http"
	"time"

	"github.com/solmarket/marketplace-client/utils/logger"
	validatorx "github.com/solmarket/marketplace-client/utils/validator"
	"go.uber.org/zap"
)

func main() {
	port := flag.Int("port", 4000, "port to listen on")
	secret := flag.String("jwt-secret", "mock-secret", "HS256 signing secret")
	flag.Parse()

	if err := logger.Init("development"); err != nil {
		panic(err)
	}
	defer logger.Close()

	validatorx.Init()

	s := &server{
		store:     newStore(),
		jwtSecret: []byte(*secret),
		tokenTTL:  24 * time.Hour,
	}

	addr := fmt.Sprintf(":%d", *port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      newRouter(s),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	logger.Info("mock marketplace backend running", zap.String("addr", addr))
	if err := srv.ListenAndServe(); err != nil {
		logger.Fatal("failed server", zap.Error(err))
	}
}
