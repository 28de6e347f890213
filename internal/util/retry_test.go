package util

import (
	"context"
	"errors"
	"testing"
)

func TestRetry(t *testing.T) {
	t.Run("succeeds first try", func(t *testing.T) {
		calls := 0
		got, err := Retry(3, func() (int, error) {
			calls++
			return 42, nil
		})
		if err != nil {
			t.Fatalf("Retry() error = %v", err)
		}
		if got != 42 || calls != 1 {
			t.Errorf("Retry() = %d after %d calls, want 42 after 1", got, calls)
		}
	})

	t.Run("succeeds after failures", func(t *testing.T) {
		calls := 0
		got, err := Retry(3, func() (string, error) {
			calls++
			if calls < 3 {
				return "", errors.New("transient")
			}
			return "ok", nil
		})
		if err != nil {
			t.Fatalf("Retry() error = %v", err)
		}
		if got != "ok" || calls != 3 {
			t.Errorf("Retry() = %q after %d calls, want \"ok\" after 3", got, calls)
		}
	})

	t.Run("returns last error", func(t *testing.T) {
		wantErr := errors.New("permanent")
		calls := 0
		_, err := Retry(3, func() (int, error) {
			calls++
			return 0, wantErr
		})
		if !errors.Is(err, wantErr) {
			t.Errorf("Retry() error = %v, want %v", err, wantErr)
		}
		if calls != 3 {
			t.Errorf("Retry() made %d calls, want 3", calls)
		}
	})

	t.Run("zero maxTries runs once", func(t *testing.T) {
		calls := 0
		_, _ = Retry(0, func() (int, error) {
			calls++
			return 0, errors.New("fail")
		})
		if calls != 1 {
			t.Errorf("Retry() made %d calls, want 1", calls)
		}
	})
}

func TestRetryErr(t *testing.T) {
	t.Run("succeeds after failures", func(t *testing.T) {
		calls := 0
		err := RetryErr(3, func() error {
			calls++
			if calls < 2 {
				return errors.New("transient")
			}
			return nil
		})
		if err != nil {
			t.Fatalf("RetryErr() error = %v", err)
		}
		if calls != 2 {
			t.Errorf("RetryErr() made %d calls, want 2", calls)
		}
	})

	t.Run("returns last error", func(t *testing.T) {
		wantErr := errors.New("permanent")
		calls := 0
		err := RetryErr(2, func() error {
			calls++
			return wantErr
		})
		if !errors.Is(err, wantErr) {
			t.Errorf("RetryErr() error = %v, want %v", err, wantErr)
		}
		if calls != 2 {
			t.Errorf("RetryErr() made %d calls, want 2", calls)
		}
	})

	t.Run("zero maxTries runs once", func(t *testing.T) {
		calls := 0
		_ = RetryErr(0, func() error {
			calls++
			return errors.New("fail")
		})
		if calls != 1 {
			t.Errorf("RetryErr() made %d calls, want 1", calls)
		}
	})
}

func TestRetryWithContext(t *testing.T) {
	t.Run("stops on canceled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		calls := 0
		_, err := RetryWithContext(ctx, 3, func(ctx context.Context) (int, error) {
			calls++
			return 0, errors.New("fail")
		})
		if !errors.Is(err, context.Canceled) {
			t.Errorf("RetryWithContext() error = %v, want context.Canceled", err)
		}
		if calls != 0 {
			t.Errorf("RetryWithContext() made %d calls, want 0", calls)
		}
	})

	t.Run("does not retry cancellation errors", func(t *testing.T) {
		calls := 0
		_, err := RetryWithContext(context.Background(), 3, func(ctx context.Context) (int, error) {
			calls++
			return 0, context.DeadlineExceeded
		})
		if !errors.Is(err, context.DeadlineExceeded) {
			t.Errorf("RetryWithContext() error = %v, want context.DeadlineExceeded", err)
		}
		if calls != 1 {
			t.Errorf("RetryWithContext() made %d calls, want 1", calls)
		}
	})
}
