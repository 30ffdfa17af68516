package logger_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/davost/wordrank/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func TestLogger(t *testing.T) {
	Convey("Given an initialized logger", t, func() {
		var buf bytes.Buffer
		So(logger.InitWriter(&buf), ShouldBeNil)
		ctx := context.Background()

		Convey("When logging at info with fields", func() {
			logger.Get().Info(ctx, "run started",
				logger.String("guesses", "valid.txt"),
				logger.Int("count", 12972),
			)

			Convey("Then the entry carries message and fields", func() {
				out := buf.String()
				So(out, ShouldContainSubstring, "run started")
				So(out, ShouldContainSubstring, "valid.txt")
				So(out, ShouldContainSubstring, "12972")
			})
		})

		Convey("When logging below the configured level", func() {
			So(logger.SetLevelString("warn"), ShouldBeNil)
			logger.Get().Info(ctx, "hidden")
			logger.Get().Warn(ctx, "visible")

			Convey("Then only the warning appears", func() {
				So(buf.String(), ShouldNotContainSubstring, "hidden")
				So(buf.String(), ShouldContainSubstring, "visible")
			})

			// Restore for other tests.
			So(logger.SetLevelString("info"), ShouldBeNil)
		})

		Convey("When logging an error field", func() {
			logger.Get().Error(ctx, "load failed", logger.Error(errors.New("no such file")))

			Convey("Then the error text is attached", func() {
				So(buf.String(), ShouldContainSubstring, "no such file")
			})
		})

		Convey("When using a named logger", func() {
			logger.Named("pool").Info(ctx, "workers ready", logger.Int("workers", 8))

			Convey("Then the group prefixes the field keys", func() {
				So(buf.String(), ShouldContainSubstring, "pool.workers=8")
			})
		})

		Convey("When setting an unknown level", func() {
			So(logger.SetLevelString("loud"), ShouldNotBeNil)
		})
	})
}
