package main

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/jedisct1/go-aria"
	"github.com/jedisct1/go-aria/internal/config"
	"github.com/jedisct1/go-aria/internal/log"
)

var (
	encryptCommand = &cli.Command{
		Name:      "encrypt",
		Usage:     "encrypt one 16-byte block",
		UsageText: "aria --key KEY encrypt BLOCK",
		Action:    func(c *cli.Context) error { return cryptCmd(c, true) },
	}

	decryptCommand = &cli.Command{
		Name:      "decrypt",
		Usage:     "decrypt one 16-byte block",
		UsageText: "aria --key KEY decrypt BLOCK",
		Action:    func(c *cli.Context) error { return cryptCmd(c, false) },
	}

	scheduleCommand = &cli.Command{
		Name:      "schedule",
		Usage:     "print the 13 round keys derived from the key",
		UsageText: "aria --key KEY schedule [--decrypt]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "decrypt",
				Usage: "print decryption round keys instead of encryption round keys",
			},
		},
		Action: scheduleCmd,
	}

	benchCommand = &cli.Command{
		Name:      "bench",
		Usage:     "measure single-block encryption throughput",
		UsageText: "aria [--key KEY] bench [--blocks N]",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "blocks",
				Aliases: []string{"n"},
				Usage:   "Number of blocks to encrypt `NUMBER` (default from bench_blocks)",
			},
		},
		Action: benchCmd,
	}
)

func decodeBlock(s, format string) ([]byte, error) {
	s = strings.TrimSpace(s)
	var (
		b   []byte
		err error
	)
	switch format {
	case config.FormatBase64:
		b, err = base64.StdEncoding.DecodeString(s)
	default:
		b, err = hex.DecodeString(s)
	}
	if err != nil {
		return nil, fmt.Errorf("decoding %s block: %w", format, err)
	}
	if len(b) != aria.BlockSize {
		return nil, fmt.Errorf("%w: got %d bytes", aria.ErrInvalidBlockSize, len(b))
	}
	return b, nil
}

func encodeBlock(b []byte, format string) string {
	if format == config.FormatBase64 {
		return base64.StdEncoding.EncodeToString(b)
	}
	return hex.EncodeToString(b)
}

func cryptCmd(c *cli.Context, encrypt bool) error {
	cfg := configFrom(c)
	if c.NArg() != 1 {
		return fmt.Errorf("%s: expected exactly one block argument, got %d", c.Command.Name, c.NArg())
	}
	key, err := cfg.KeyBytes()
	if err != nil {
		return err
	}
	src, err := decodeBlock(c.Args().First(), cfg.Format)
	if err != nil {
		return err
	}

	ciph, err := aria.DefaultCache.Cipher(key)
	if err != nil {
		return err
	}
	dst := make([]byte, aria.BlockSize)
	if encrypt {
		ciph.Encrypt(dst, src)
	} else {
		ciph.Decrypt(dst, src)
	}
	log.Debug().Str("op", c.Command.Name).Str("format", cfg.Format).Msg("block processed")

	fmt.Fprintln(c.App.Writer, encodeBlock(dst, cfg.Format))
	return nil
}

func scheduleCmd(c *cli.Context) error {
	cfg := configFrom(c)
	key, err := cfg.KeyBytes()
	if err != nil {
		return err
	}
	s, err := aria.NewSchedule(key)
	if err != nil {
		return err
	}

	keys, prefix := s.EncryptionKeys(), "ek"
	if c.Bool("decrypt") {
		keys, prefix = s.DecryptionKeys(), "dk"
	}
	for i, rk := range keys {
		fmt.Fprintf(c.App.Writer, "%s%02d %s\n", prefix, i+1, rk)
	}
	return nil
}

func benchCmd(c *cli.Context) error {
	cfg := configFrom(c)
	blocks := cfg.BenchBlocks
	if c.IsSet("blocks") {
		blocks = c.Int("blocks")
	}
	if blocks <= 0 {
		return fmt.Errorf("bench: --blocks must be positive, got %d", blocks)
	}

	key := make([]byte, aria.KeySize)
	if cfg.Key != "" {
		var err error
		if key, err = cfg.KeyBytes(); err != nil {
			return err
		}
	}
	ciph, err := aria.NewCipher(key)
	if err != nil {
		return err
	}

	buf := make([]byte, aria.BlockSize)
	start := time.Now()
	for i := 0; i < blocks; i++ {
		ciph.Encrypt(buf, buf)
	}
	elapsed := time.Since(start)

	mbPerSec := float64(blocks*aria.BlockSize) / elapsed.Seconds() / (1024 * 1024)
	log.Info().
		Int("blocks", blocks).
		Dur("elapsed", elapsed).
		Float64("mb_per_sec", mbPerSec).
		Msg("bench finished")
	fmt.Fprintf(c.App.Writer, "%d blocks in %s (%.2f MB/s)\n", blocks, elapsed, mbPerSec)
	return nil
}
