package uptime

import (
	"bytes"
	"context"
	"fmt"
	"net"
	"os"
	"strings"
	"sync"
	"time"

	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/agent"

	"github.com/opd-ai/go-uptime/internal/platform"
)

// AuthMethod selects how the remote client authenticates. Exactly one
// of PasswordAuth, KeyAuth, or AgentAuth is set on RemoteConfig.
type AuthMethod interface {
	authMethod()
}

// PasswordAuth authenticates with a plain password.
type PasswordAuth struct {
	Password string
}

// KeyAuth authenticates with a private key file, optionally protected
// by a passphrase.
type KeyAuth struct {
	PrivateKeyPath string
	Passphrase     string
}

// AgentAuth authenticates via the SSH agent at $SSH_AUTH_SOCK.
type AgentAuth struct{}

func (PasswordAuth) authMethod() {}
func (KeyAuth) authMethod()      {}
func (AgentAuth) authMethod()    {}

// RemoteConfig configures SSH-based remote uptime retrieval.
type RemoteConfig struct {
	// Host is the remote hostname or address. Required.
	Host string

	// Port is the SSH port. Default: 22.
	Port int

	// User is the SSH login name. Required.
	User string

	// Auth is the authentication method. Required.
	Auth AuthMethod

	// TargetOS overrides remote OS detection. One of "linux", "darwin",
	// "freebsd". When empty the client runs uname -s after connecting.
	TargetOS string

	// CommandTimeout bounds each remote command. Default: 5 seconds.
	CommandTimeout time.Duration

	// HostKeyCallback verifies the remote host key. When nil the client
	// accepts any host key, which is only acceptable on trusted networks;
	// production callers should supply ssh.FixedHostKey or a known_hosts
	// callback.
	HostKeyCallback ssh.HostKeyCallback

	// Logger receives connection and command diagnostics. Default: no-op.
	Logger Logger
}

// Remote retrieves uptime from a remote system over SSH. It runs the
// same primitives this library uses locally (cat /proc/uptime on Linux,
// sysctl -n kern.boottime on the BSD family) and parses the output
// locally, so nothing needs to be installed on the target.
//
// A Remote is safe for concurrent use after Connect returns.
type Remote struct {
	config   RemoteConfig
	log      Logger
	targetOS string

	mu     sync.RWMutex
	client *ssh.Client
	ctx    context.Context
	cancel context.CancelFunc
}

// NewRemote validates the configuration and creates a remote client.
// No connection is made until Connect is called.
func NewRemote(config RemoteConfig) (*Remote, error) {
	if config.Host == "" {
		return nil, fmt.Errorf("host is required")
	}
	if config.User == "" {
		return nil, fmt.Errorf("user is required")
	}
	if config.Auth == nil {
		return nil, fmt.Errorf("authentication method is required")
	}

	if config.Port == 0 {
		config.Port = 22
	}
	if config.CommandTimeout == 0 {
		config.CommandTimeout = 5 * time.Second
	}

	log := config.Logger
	if log == nil {
		log = NopLogger()
	}

	return &Remote{
		config: config,
		log:    log,
	}, nil
}

// Connect establishes the SSH connection and detects the remote OS
// unless TargetOS was set.
func (r *Remote) Connect(ctx context.Context) error {
	sshConfig, err := r.buildSSHConfig()
	if err != nil {
		return fmt.Errorf("building SSH config: %w", err)
	}

	addr := net.JoinHostPort(r.config.Host, fmt.Sprintf("%d", r.config.Port))
	client, err := ssh.Dial("tcp", addr, sshConfig)
	if err != nil {
		return platform.NewSourceError(platform.KindAccess, "remote",
			fmt.Errorf("connecting to %s: %w", addr, err))
	}

	r.mu.Lock()
	r.client = client
	r.ctx, r.cancel = context.WithCancel(ctx)
	r.mu.Unlock()

	r.log.Info("connected", "host", r.config.Host, "port", r.config.Port)

	if r.config.TargetOS != "" {
		r.targetOS = r.config.TargetOS
	} else {
		r.targetOS, err = r.detectOS()
		if err != nil {
			_ = r.Close()
			return err
		}
		r.log.Debug("detected remote OS", "os", r.targetOS)
	}

	switch r.targetOS {
	case "linux", "darwin", "freebsd":
	default:
		_ = r.Close()
		return platform.NewSourceError(platform.KindUnsupported, "remote",
			fmt.Errorf("unsupported remote OS: %s", r.targetOS))
	}

	return nil
}

// Close terminates the SSH connection. It is safe to call more than once.
func (r *Remote) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cancel != nil {
		r.cancel()
	}
	if r.client != nil {
		err := r.client.Close()
		r.client = nil
		return err
	}
	return nil
}

// TargetOS returns the detected or configured remote operating system.
// It is empty before Connect succeeds.
func (r *Remote) TargetOS() string {
	return r.targetOS
}

// Milliseconds returns the remote system's uptime in milliseconds.
func (r *Remote) Milliseconds() (uint64, error) {
	switch r.targetOS {
	case "linux":
		out, err := r.runCommand("cat /proc/uptime")
		if err != nil {
			return 0, err
		}
		return platform.ParseProcUptime([]byte(out), "remote")
	case "darwin", "freebsd":
		boot, err := r.BootTime()
		if err != nil {
			return 0, err
		}
		ms, err := platform.SinceBoot(boot, time.Now())
		if err != nil {
			return 0, platform.NewSourceError(platform.KindFormat, "remote", err)
		}
		return ms, nil
	default:
		return 0, platform.NewSourceError(platform.KindAccess, "remote",
			fmt.Errorf("not connected"))
	}
}

// Duration returns the remote system's uptime as a time.Duration.
func (r *Remote) Duration() (time.Duration, error) {
	ms, err := r.Milliseconds()
	if err != nil {
		return 0, err
	}
	return time.Duration(ms) * time.Millisecond, nil
}

// BootTime returns the instant the remote system booted.
func (r *Remote) BootTime() (time.Time, error) {
	switch r.targetOS {
	case "linux":
		ms, err := r.Milliseconds()
		if err != nil {
			return time.Time{}, err
		}
		return time.Now().Add(-time.Duration(ms) * time.Millisecond), nil
	case "darwin", "freebsd":
		out, err := r.runCommand("sysctl -n kern.boottime")
		if err != nil {
			return time.Time{}, err
		}
		return platform.ParseSysctlTimeval(out, "remote")
	default:
		return time.Time{}, platform.NewSourceError(platform.KindAccess, "remote",
			fmt.Errorf("not connected"))
	}
}

func (r *Remote) buildSSHConfig() (*ssh.ClientConfig, error) {
	var authMethods []ssh.AuthMethod

	switch auth := r.config.Auth.(type) {
	case PasswordAuth:
		authMethods = append(authMethods, ssh.Password(auth.Password))
	case KeyAuth:
		key, err := os.ReadFile(auth.PrivateKeyPath)
		if err != nil {
			return nil, fmt.Errorf("reading private key: %w", err)
		}
		var signer ssh.Signer
		if auth.Passphrase != "" {
			signer, err = ssh.ParsePrivateKeyWithPassphrase(key, []byte(auth.Passphrase))
		} else {
			signer, err = ssh.ParsePrivateKey(key)
		}
		if err != nil {
			return nil, fmt.Errorf("parsing private key: %w", err)
		}
		authMethods = append(authMethods, ssh.PublicKeys(signer))
	case AgentAuth:
		socket := os.Getenv("SSH_AUTH_SOCK")
		if socket == "" {
			return nil, fmt.Errorf("SSH_AUTH_SOCK not set")
		}
		// Defer the agent connection until authentication actually runs.
		authMethods = append(authMethods, ssh.PublicKeysCallback(func() ([]ssh.Signer, error) {
			agentConn, err := net.Dial("unix", socket)
			if err != nil {
				return nil, fmt.Errorf("connecting to SSH agent: %w", err)
			}
			defer agentConn.Close()

			agentClient := agent.NewClient(agentConn)
			signers, err := agentClient.Signers()
			if err != nil {
				return nil, fmt.Errorf("getting signers from SSH agent: %w", err)
			}
			return signers, nil
		}))
	default:
		return nil, fmt.Errorf("unsupported auth method type: %T", auth)
	}

	hostKeyCallback := r.config.HostKeyCallback
	if hostKeyCallback == nil {
		hostKeyCallback = ssh.InsecureIgnoreHostKey()
	}

	return &ssh.ClientConfig{
		User:            r.config.User,
		Auth:            authMethods,
		HostKeyCallback: hostKeyCallback,
		Timeout:         10 * time.Second,
	}, nil
}

// detectOS identifies the remote operating system via uname -s.
func (r *Remote) detectOS() (string, error) {
	out, err := r.runCommand("uname -s")
	if err != nil {
		return "", fmt.Errorf("detecting remote OS: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(out)) {
	case "linux":
		return "linux", nil
	case "darwin":
		return "darwin", nil
	case "freebsd":
		return "freebsd", nil
	default:
		return "", platform.NewSourceError(platform.KindUnsupported, "remote",
			fmt.Errorf("unrecognized uname output %q", strings.TrimSpace(out)))
	}
}

// runCommand executes a command on the remote system and returns stdout.
func (r *Remote) runCommand(cmd string) (string, error) {
	r.mu.RLock()
	client := r.client
	ctx := r.ctx
	r.mu.RUnlock()

	if client == nil {
		return "", platform.NewSourceError(platform.KindAccess, "remote",
			fmt.Errorf("not connected"))
	}

	session, err := client.NewSession()
	if err != nil {
		return "", platform.NewSourceError(platform.KindAccess, "remote",
			fmt.Errorf("creating session: %w", err))
	}
	defer session.Close()

	var stdout, stderr bytes.Buffer
	session.Stdout = &stdout
	session.Stderr = &stderr

	done := make(chan error, 1)
	go func() {
		done <- session.Run(cmd)
	}()

	select {
	case err := <-done:
		if err != nil {
			r.log.Warn("remote command failed", "cmd", cmd, "err", err)
			return "", platform.NewSourceError(platform.KindAccess, "remote",
				fmt.Errorf("running %q: %w (stderr: %s)", cmd, err, strings.TrimSpace(stderr.String())))
		}
		return stdout.String(), nil
	case <-time.After(r.config.CommandTimeout):
		// Make sure the remote command is actually terminated.
		_ = session.Signal(ssh.SIGKILL)
		_ = session.Close()
		return "", platform.NewSourceError(platform.KindAccess, "remote",
			fmt.Errorf("command %q timed out after %v", cmd, r.config.CommandTimeout))
	case <-ctx.Done():
		_ = session.Signal(ssh.SIGKILL)
		_ = session.Close()
		return "", ctx.Err()
	}
}
