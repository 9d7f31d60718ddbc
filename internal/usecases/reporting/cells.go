package reporting

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/retail-dashboard-api/internal/domain"
	"github.com/vfg2006/retail-dashboard-api/pkg/utils"
)

const cellsListLimit = 10

// Cells roda todos os relatórios do painel em paralelo. A falha de uma seção,
// inclusive um panic, deixa só aquela seção nula e registra a mensagem em Errors.
func (s *Service) Cells(ctx context.Context) *domain.CellsReport {
	report := &domain.CellsReport{Errors: map[string]string{}}

	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)

	run := func(key string, job func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := utils.Recover(job)(); err != nil {
				logrus.WithError(err).WithField("section", key).Warn("cells payload section failed")
				mu.Lock()
				report.Errors[key] = err.Error()
				mu.Unlock()
			}
		}()
	}

	// cada job escreve só no seu próprio campo
	run("summary", func() error {
		summary, err := s.Summary(ctx)
		if err == nil {
			report.Summary = &summary.Summary
			report.KPIs = &summary.KPIs
		}
		return err
	})
	run("ytdComparison", func() (err error) {
		report.YTDComparison, err = s.YTD(ctx)
		return err
	})
	run("topUnits", func() (err error) {
		report.TopProductsUnits, err = s.TopProductsByUnits(ctx, cellsListLimit)
		return err
	})
	run("topRevenue", func() (err error) {
		report.TopProductsRevenue, err = s.TopProductsByRevenue(ctx, cellsListLimit)
		return err
	})
	run("momentum", func() (err error) {
		report.ProductMomentum, err = s.ProductMomentum(ctx, cellsListLimit, domain.MomentumMetricRevenue)
		return err
	})
	run("pace", func() (err error) {
		report.DailySalesPace, err = s.DailySalesPace(ctx)
		return err
	})
	run("projection", func() (err error) {
		report.MTDProjection, err = s.MTDProjection(ctx)
		return err
	})
	run("grossNetReturns", func() (err error) {
		report.GrossNetReturns, err = s.GrossNetReturns(ctx)
		return err
	})
	run("aov", func() (err error) {
		report.AOV, err = s.AOV(ctx)
		return err
	})
	run("websiteSessionsMtd", func() (err error) {
		report.WebsiteSessionsMTD, err = s.WebsiteSessionsMTD(ctx)
		return err
	})
	run("newVsReturning", func() (err error) {
		report.NewVsReturning, err = s.NewVsReturning(ctx)
		return err
	})
	run("channels", func() (err error) {
		report.ChannelSplit, err = s.ChannelSplit(ctx)
		return err
	})
	run("discountImpact", func() (err error) {
		report.DiscountImpact, err = s.DiscountImpact(ctx)
		return err
	})
	run("heatmap", func() (err error) {
		report.HourlyHeatmapToday, err = s.HourlyHeatmapToday(ctx)
		return err
	})
	run("refundWatchlist", func() (err error) {
		report.RefundWatchlist, err = s.RefundWatchlist(ctx, cellsListLimit)
		return err
	})

	wg.Wait()
	report.UpdatedAt = utils.ISO(s.now())

	return report
}
