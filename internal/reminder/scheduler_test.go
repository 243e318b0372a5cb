package reminder_test

import (
	"context"
	"sync/atomic"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"pricingdesk.app/server/core/config"
	"pricingdesk.app/server/internal/reminder"
)

type countingRunner struct {
	pl atomic.Int32
	vp atomic.Int32
}

func (c *countingRunner) RunPL(context.Context) (reminder.Result, error) {
	c.pl.Add(1)
	return reminder.Result{}, nil
}

func (c *countingRunner) RunVP(context.Context) (reminder.Result, error) {
	c.vp.Add(1)
	return reminder.Result{}, nil
}

var _ = Describe("Scheduler", func() {
	It("rejects an invalid schedule", func() {
		_, err := reminder.NewScheduler(&countingRunner{}, config.ReminderConfig{
			PLSchedule: "every morning",
			VPSchedule: "0 10 * * *",
			Timezone:   "UTC",
		})

		Expect(err).To(MatchError(ContainSubstring("invalid PL reminder schedule")))
	})

	It("runs both sweeps on their schedules", func() {
		runner := &countingRunner{}
		s, err := reminder.NewScheduler(runner, config.ReminderConfig{
			PLSchedule: "@every 1s",
			VPSchedule: "@every 1s",
			Timezone:   "UTC",
		})
		Expect(err).NotTo(HaveOccurred())

		s.Start(context.Background())
		Eventually(runner.pl.Load, 3*time.Second).Should(BeNumerically(">=", 1))
		Eventually(runner.vp.Load, 3*time.Second).Should(BeNumerically(">=", 1))

		stopCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		Expect(s.Stop(stopCtx)).To(Succeed())
	})
})
