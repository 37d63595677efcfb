package main

import (
	"context"
	"os"
	"os/signal"

	"coinrush/pkg/arena"
	"coinrush/pkg/config"
	"coinrush/pkg/ingress"

	"github.com/rs/zerolog/log"
)

// watchBroadcasts logs all-scope broadcasts while debugging.
func watchBroadcasts(ctx context.Context, server *arena.Server) {
	events := server.Broadcasts.Subscribe()
	defer events.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case messages := <-events.Recv():
			for _, message := range messages {
				log.Debug().Msgf("broadcast %T", message)
			}
		}
	}
}

func serveCommand(configs []string) error {
	conf, err := config.Process(configs)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	server := arena.New(ctx, conf)
	go server.Poll(ctx)
	go watchBroadcasts(ctx, server)

	web := ingress.NewWSIngress(server)

	errc := make(chan error, 1)
	go func() {
		errc <- web.Serve(ctx, conf.Server.Ingress.Web.Port)
	}()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt)

	select {
	case err := <-errc:
		log.Error().Err(err).Msg("failed to serve")
	case sig := <-sigs:
		log.Info().Msgf("terminating: %v", sig)
	}

	web.Shutdown(ctx)
	return nil
}
