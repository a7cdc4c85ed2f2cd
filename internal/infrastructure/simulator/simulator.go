package simulator

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/Liso15/UbuntuExpress/internal/cfg"
	"github.com/Liso15/UbuntuExpress/internal/usecase"
	"github.com/Liso15/UbuntuExpress/pkg/logger"
	"github.com/shopspring/decimal"
)

// PriceSimulator периодически двигает случайную цену на случайный процент
// в пределах настроенного коридора. Используется в демо-окружении, чтобы
// алерты и кэш жили без реальных обновлений от ритейлеров.
type PriceSimulator struct {
	priceUC usecase.PriceUC
	cfg     *cfg.SimulatorCfg
	logger  logger.Logger
	rnd     *rand.Rand
	wg      sync.WaitGroup
}

func NewPriceSimulator(priceUC usecase.PriceUC, cfg *cfg.SimulatorCfg, logger logger.Logger) *PriceSimulator {
	return &PriceSimulator{
		priceUC: priceUC,
		cfg:     cfg,
		logger:  logger,
		rnd:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (s *PriceSimulator) Start(ctx context.Context) {
	if !s.cfg.Enabled {
		return
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.run(ctx)
	}()
}

func (s *PriceSimulator) run(ctx context.Context) {
	s.logger.Infof("Price simulator started, interval: %s", s.cfg.Interval)

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Infof("Price simulator stopped")
			return
		case <-ticker.C:
			if err := s.tick(ctx); err != nil {
				s.logger.Warnf("simulator tick failed: %v", err)
			}
		}
	}
}

// tick выбирает случайную запись и сдвигает её цену на [-max, +max] процентов.
func (s *PriceSimulator) tick(ctx context.Context) error {
	ids, err := s.priceUC.ListPriceIDs(ctx)
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		return nil
	}

	id := ids[s.rnd.Intn(len(ids))]
	offer, err := s.priceUC.GetPriceByID(ctx, id)
	if err != nil {
		return err
	}

	deltaPct := (s.rnd.Float64()*2 - 1) * s.cfg.MaxDeltaPct
	factor := decimal.NewFromFloat(1 + deltaPct/100)
	newPrice := offer.Price.Mul(factor).Round(2)
	if newPrice.IsNegative() || newPrice.IsZero() {
		return nil
	}

	if _, err := s.priceUC.UpdatePrice(ctx, id, &usecase.UpdatePriceReq{Price: &newPrice}); err != nil {
		return err
	}

	s.logger.Debugf("simulated price move for offer %d: %s -> %s", id, offer.Price, newPrice)

	return nil
}

// Wait блокируется до завершения фонового цикла.
func (s *PriceSimulator) Wait() {
	s.wg.Wait()
}
