package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/git2026/programacao-web/config"
	"github.com/git2026/programacao-web/hashing"
	"github.com/git2026/programacao-web/logger"
	"github.com/git2026/programacao-web/pwhash"
)

// errMismatch makes verify exit non-zero without an error log line.
var errMismatch = errors.New("password does not match")

type passwordFlags struct {
	password string
	stdin    bool
}

func (f *passwordFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.password, "password", "", "password (prefer --password-stdin or PASSHASH_PASSWORD)")
	cmd.Flags().BoolVar(&f.stdin, "password-stdin", false, "read the password from the first line of stdin")
}

// read resolves the password from the flag, stdin or the environment, in
// that order.
func (f *passwordFlags) read(in io.Reader) ([]byte, error) {
	switch {
	case f.password != "":
		return []byte(f.password), nil
	case f.stdin:
		line, err := bufio.NewReader(in).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("read password: %w", err)
		}
		return []byte(strings.TrimRight(line, "\r\n")), nil
	case config.GetPassword() != "":
		return []byte(config.GetPassword()), nil
	default:
		return nil, errors.New("no password given: use --password, --password-stdin or PASSHASH_PASSWORD")
	}
}

func newManager() (*hashing.Manager, error) {
	rounds, err := config.GetRounds()
	if err != nil {
		return nil, err
	}
	saltLen, err := config.GetSaltLen()
	if err != nil {
		return nil, err
	}
	sha := hashing.DefaultSHA512Options()
	sha.Rounds = rounds
	sha.SaltLen = saltLen

	driver := config.GetDriver()
	logger.Debugf("driver=%s rounds=%d salt_len=%d", driver, rounds, saltLen)
	return hashing.NewManagerWithOptions(driver, sha, hashing.DefaultBcryptOptions(), hashing.DefaultArgon2Options())
}

// makeCredential hashes with the default driver, or with the sha512i driver
// and the given salt when one is supplied.
func makeCredential(m *hashing.Manager, password, salt []byte) (string, error) {
	if len(salt) == 0 {
		return m.Make(password)
	}
	if def := m.DefaultDriver(); def != hashing.DriverSHA512 {
		logger.Warningf("--salt only applies to %s; ignoring driver %s", hashing.DriverSHA512, def)
	}
	h, err := m.Driver(hashing.DriverSHA512)
	if err != nil {
		return "", err
	}
	sha, ok := h.(*hashing.SHA512Hasher)
	if !ok {
		return "", fmt.Errorf("driver %s does not accept a caller-supplied salt", hashing.DriverSHA512)
	}
	return sha.MakeWithSalt(password, salt)
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "passhash",
		Short:         "Salted, iterated SHA-512 password credentials",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newHashCmd(), newVerifyCmd(), newInfoCmd(), newNeedsRehashCmd())
	return root
}

func newHashCmd() *cobra.Command {
	var (
		pw   passwordFlags
		salt string
		raw  bool
	)
	cmd := &cobra.Command{
		Use:   "hash",
		Short: "Hash a password and print the credential",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			password, err := pw.read(cmd.InOrStdin())
			if err != nil {
				return err
			}
			if raw {
				if salt == "" {
					return errors.New("--raw requires --salt")
				}
				fmt.Fprintln(cmd.OutOrStdout(), pwhash.Sum(password, []byte(salt)))
				return nil
			}

			m, err := newManager()
			if err != nil {
				return err
			}
			hash, err := makeCredential(m, password, []byte(salt))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}
	pw.register(cmd)
	cmd.Flags().StringVar(&salt, "salt", "", "salt to use instead of a random one; must be unique per credential")
	cmd.Flags().BoolVar(&raw, "raw", false, "print only the 128-character hex digest (fixed 10000 rounds)")
	return cmd
}

func newVerifyCmd() *cobra.Command {
	var (
		pw   passwordFlags
		hash string
		salt string
	)
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check a password against a stored credential",
		Long: "Check a password against a stored credential.  With --salt, --hash is\n" +
			"the bare 128-character hex digest produced with 10000 rounds.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			password, err := pw.read(cmd.InOrStdin())
			if err != nil {
				return err
			}

			var ok bool
			if salt != "" {
				ok = pwhash.Verify(password, []byte(hash), []byte(salt))
			} else {
				m, err := newManager()
				if err != nil {
					return err
				}
				if ok, err = m.CheckWithDetect(password, hash); err != nil {
					return err
				}
				if ok {
					if needs, err := m.NeedsRehash(hash); err == nil && needs {
						logger.Info("credential matches but should be rehashed")
					}
				}
			}

			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "mismatch")
				return errMismatch
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}
	pw.register(cmd)
	cmd.Flags().StringVar(&hash, "hash", "", "stored credential")
	cmd.Flags().StringVar(&salt, "salt", "", "salt for a bare hex digest")
	_ = cmd.MarkFlagRequired("hash")
	return cmd
}

func newInfoCmd() *cobra.Command {
	var hash string
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Print the parameters stored in a credential",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := newManager()
			if err != nil {
				return err
			}
			info, err := m.InfoWithDetect(hash)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "driver=%s\n", info.Driver)
			keys := make([]string, 0, len(info.Params))
			for k := range info.Params {
				keys = append(keys, k)
			}
			slices.Sort(keys)
			for _, k := range keys {
				fmt.Fprintf(out, "%s=%v\n", k, info.Params[k])
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&hash, "hash", "", "stored credential")
	_ = cmd.MarkFlagRequired("hash")
	return cmd
}

func newNeedsRehashCmd() *cobra.Command {
	var hash string
	cmd := &cobra.Command{
		Use:   "needs-rehash",
		Short: "Report whether a credential should be replaced",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := newManager()
			if err != nil {
				return err
			}
			needs, err := m.NeedsRehash(hash)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), needs)
			return nil
		},
	}
	cmd.Flags().StringVar(&hash, "hash", "", "stored credential")
	_ = cmd.MarkFlagRequired("hash")
	return cmd
}
