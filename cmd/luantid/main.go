// Command luantid is a demo entrypoint wiring internal/conn into a
// runnable server: it accepts connections, completes the Init/Hello
// handshake, and logs whatever commands each connected client sends.
// Game logic, persistent world storage, and media delivery are out of
// scope (spec.md §1) — this is a transport-layer smoke test harness,
// not a playable server.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kawogi/luanti-go-proto/internal/command"
	"github.com/kawogi/luanti-go-proto/internal/conn"
	"github.com/kawogi/luanti-go-proto/internal/log"
	"github.com/kawogi/luanti-go-proto/internal/types"
	"github.com/kawogi/luanti-go-proto/internal/wire"
)

const version = "0.1.0"

func main() {
	root := newRootCommand()
	if err := root.Execute(); err != nil {
		log.Fatal("luantid: %v", err)
	}
}

func newRootCommand() *cobra.Command {
	v := viper.New()
	cmd := &cobra.Command{
		Use:   "luantid",
		Short: "Demo Luanti-compatible protocol server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), v)
		},
	}
	cmd.Flags().String("listen", "0.0.0.0:30000", "UDP address to listen on")
	cmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")
	cmd.Flags().String("server-name", "luantid demo server", "username_legacy / banner label")

	v.BindPFlag("listen", cmd.Flags().Lookup("listen"))
	v.BindPFlag("log-level", cmd.Flags().Lookup("log-level"))
	v.BindPFlag("server-name", cmd.Flags().Lookup("server-name"))
	v.SetEnvPrefix("LUANTID")
	v.AutomaticEnv()

	return cmd
}

func runServe(parentCtx context.Context, v *viper.Viper) error {
	level, err := zerolog.ParseLevel(v.GetString("log-level"))
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", v.GetString("log-level"), err)
	}
	log.SetLevel(level)
	log.Banner("luantid", version)

	ctx, cancel := context.WithCancel(parentCtx)
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Info("shutdown signal received")
		cancel()
	}()

	listen := v.GetString("listen")
	srv, err := conn.Listen(listen)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", listen, err)
	}
	defer srv.Close()

	log.Section("luantid demo server")
	log.Info("listening on %s (protocol %d, ser_fmt %d)", listen, wire.LatestProtocolVersion, wire.SerFmtHighestWrite)

	go srv.Run(ctx)

	for {
		c, err := srv.Accept(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			log.Warn("accept: %v", err)
			continue
		}
		go handleConnection(ctx, c, v.GetString("server-name"))
	}
}

// handleConnection drives one player's session: it waits for the
// handshake commands and then echoes every further ToServer command
// to the log, replying with a bare AuthAccept once ClientReady arrives.
func handleConnection(ctx context.Context, c *conn.ServerConn, serverName string) {
	logger := log.Named("conn").With().Str("remote", c.RemoteAddr().String()).Logger()
	logger.Info().Msg("accepted connection")

	for {
		cmd, err := c.Recv()
		if err != nil {
			logger.Warn().Err(err).Msg("connection ended")
			return
		}
		switch cmd.Tag {
		case command.TagInit:
			logger.Info().Str("player", cmd.Init.PlayerName).Msg("received Init")
			hello := command.ToClientCommand{
				Tag: command.TagHello,
				Hello: command.HelloPayload{
					SerializationVer: wire.SerFmtHighestWrite,
					CompressionMode:  0,
					ProtoVer:         wire.LatestProtocolVersion,
					AuthMechs:        types.AuthMechsBitset(types.AuthMechFirstSRP),
					UsernameLegacy:   "",
				},
			}
			if err := c.Send(hello); err != nil {
				logger.Warn().Err(err).Msg("failed to send Hello")
				return
			}
		case command.TagSrpBytesA, command.TagSrpBytesM:
			logger.Debug().Msg("received SRP handshake message (auth flow is out of core scope)")
		case command.TagClientReady:
			logger.Info().Str("version", cmd.ClientReady.FullVer).Msg("client ready")
			auth := command.ToClientCommand{
				Tag: command.TagAuthAccept,
				AuthAccept: command.AuthAcceptPayload{
					PlayerPos:               types.V3F{},
					MapSeed:                 0,
					RecommendedSendInterval: 0.1,
					SudoAuthMethods:         uint32(types.AuthMechFirstSRP),
				},
			}
			if err := c.Send(auth); err != nil {
				logger.Warn().Err(err).Msg("failed to send AuthAccept")
				return
			}
		case command.TagTSChatMessage:
			logger.Info().Str("message", cmd.TSChatMessage.Message).Msg("chat")
		default:
			logger.Debug().Uint16("tag", uint16(cmd.Tag)).Msg("received command")
		}
		select {
		case <-ctx.Done():
			return
		default:
		}
	}
}
