package chart

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/arloliu/chartlink/config"
	"github.com/arloliu/chartlink/errs"
	"github.com/arloliu/chartlink/internal/options"
)

type settings struct {
	opts   config.Options
	logger logrus.FieldLogger
}

// Option configures a Chart created by New.
type Option = options.Option[*settings]

// WithOptions applies the non-zero fields of opts over the current settings.
func WithOptions(opts config.Options) Option {
	return options.NoError(func(s *settings) {
		s.opts = s.opts.Override(opts)
	})
}

// WithGroup applies the named configuration group, merged with its parents.
func WithGroup(p config.Provider, name string) Option {
	return options.New(func(s *settings) error {
		merged, err := config.Merge(p, name)
		if err != nil {
			return err
		}

		opts, err := config.Decode(merged)
		if err != nil {
			return fmt.Errorf("group %q: %w", name, err)
		}
		s.opts = s.opts.Override(opts)

		return nil
	})
}

// WithCachedGroup is like WithGroup but resolves the group through c.
func WithCachedGroup(c *config.Cache, name string) Option {
	return options.New(func(s *settings) error {
		merged, err := c.Merge(name)
		if err != nil {
			return err
		}

		opts, err := config.Decode(merged)
		if err != nil {
			return fmt.Errorf("group %q: %w", name, err)
		}
		s.opts = s.opts.Override(opts)

		return nil
	})
}

// WithHost sets the chart service host, e.g. "chart.apis.google.com".
func WithHost(host string) Option {
	return options.New(func(s *settings) error {
		if host == "" {
			return errs.ErrInvalidHost
		}
		s.opts.Host = host

		return nil
	})
}

// WithSize sets the image size in pixels.
func WithSize(width, height int) Option {
	return options.New(func(s *settings) error {
		if width <= 0 || height <= 0 {
			return fmt.Errorf("%w: %dx%d", errs.ErrInvalidSize, width, height)
		}
		s.opts.Width = width
		s.opts.Height = height

		return nil
	})
}

// WithIntervalMax sets the maximum number of resampling intervals.
func WithIntervalMax(n int) Option {
	return options.New(func(s *settings) error {
		if n <= 0 {
			return fmt.Errorf("%w: %d", errs.ErrInvalidIntervalMax, n)
		}
		s.opts.IntervalMax = n

		return nil
	})
}

// WithLogger sets the logger used for debug output. By default nothing is logged.
func WithLogger(logger logrus.FieldLogger) Option {
	return options.NoError(func(s *settings) {
		if logger != nil {
			s.logger = logger
		}
	})
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}
