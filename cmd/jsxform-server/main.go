package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/google/gops/agent"
	"github.com/scott-cotton/cli"
	"go.lsp.dev/jsonrpc2"
)

const serverName = "jsxform-server"

var version = "0.0.1"

type ServerConfig struct {
	Gops bool `cli:"name=gops desc='start a gops diagnostics agent'"`

	Main *cli.Command
}

func MainCommand() *cli.Command {
	cfg := &ServerConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, serverName).
		WithSynopsis(serverName + " [opts]").
		WithDescription(serverName + " serves unit rewrites over jsonrpc2 on stdio.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return serve(cfg, cc, args)
		})
}

func main() {
	cli.MainContext(context.Background(), MainCommand())
}

func serve(cfg *ServerConfig, cc *cli.Context, args []string) error {
	if _, err := cfg.Main.Parse(cc, args); err != nil {
		return err
	}
	if cfg.Gops {
		if err := agent.Listen(agent.Options{}); err != nil {
			return fmt.Errorf("could not start gops agent: %w", err)
		}
		defer agent.Close()
	}
	ctx := context.Background()
	stream := jsonrpc2.NewStream(&stdioReadWriteCloser{
		read:  os.Stdin,
		write: os.Stdout,
	})
	server := &Server{}
	conn := jsonrpc2.NewConn(stream)
	server.conn = conn
	conn.Go(ctx, server.handle)
	<-conn.Done()
	return nil
}

type stdioReadWriteCloser struct {
	read  io.Reader
	write io.Writer
}

func (s *stdioReadWriteCloser) Read(p []byte) (n int, err error) {
	return s.read.Read(p)
}

func (s *stdioReadWriteCloser) Write(p []byte) (n int, err error) {
	return s.write.Write(p)
}

func (s *stdioReadWriteCloser) Close() error {
	return nil
}
