package cmd

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/matjam/pagefx/internal/cli/cmd/utils"
	"github.com/matjam/pagefx/internal/ipc"
	"github.com/sevlyar/go-daemon"
	"github.com/spf13/cobra"
)

func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the transition preview server",
		Long: `Runs a preview server on a unix socket. Clients start a transition
with "pagefx start" and poll frames with "pagefx frame".`,
		Run: func(cmd *cobra.Command, args []string) {
			background, _ := cmd.Flags().GetBool("background")
			if background {
				ctx := daemonContext()
				child, err := ctx.Reborn()
				if err != nil {
					log.Fatalf("Unable to run in background: %v", err)
				}
				if child != nil {
					log.Infof("pagefx started in background, PID %d", child.Pid)
					return
				}
				defer ctx.Release()
			}
			serve(background)
		},
	}
	cmd.Flags().BoolP("background", "b", false, "Run as a daemon")
	return cmd
}

// daemonContext describes the forked server. Reborn on it forks in the
// parent and finishes the setup in the child.
func daemonContext() *daemon.Context {
	dir := dataDir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Fatalf("Error creating %v: %v", dir, err)
	}

	return &daemon.Context{
		PidFileName: filepath.Join(dir, "pagefx.pid"),
		PidFilePerm: 0644,
		WorkDir:     "/",
		Umask:       027,
	}
}

func serve(background bool) {
	log.Infof("serve started in PID: %d", os.Getpid())

	if background {
		setupRotatingLogger()
	}

	client := ipc.NewClient(ipc.SocketPath())
	defer client.Close()
	if _, err := client.Status(); err == nil {
		log.Infof("pagefx is already running, exiting")
		os.Exit(0)
	}

	cfg, err := utils.TransitionConfig()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	session := ipc.NewSession(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := ipc.Serve(ctx, session, ipc.SocketPath()); err != nil {
		log.Fatalf("Server error: %v", err)
	}
	log.Infof("pagefx exited")
}

func dataDir() string {
	return filepath.Join(os.Getenv("HOME"), ".local", "share", "pagefx")
}

func setupRotatingLogger() {
	logPath := filepath.Join(dataDir(), "pagefx.log")

	writer, err := rotatelogs.New(
		logPath+".%Y%m%d%H%M",
		rotatelogs.WithLinkName(logPath),
		rotatelogs.WithMaxAge(7*24*time.Hour),
		rotatelogs.WithRotationSize(10*1024*1024),
		rotatelogs.WithRotationTime(24*time.Hour),
	)
	if err != nil {
		log.Fatalf("failed to configure log rotation: %v", err)
	}

	log.SetOutput(writer)
}
