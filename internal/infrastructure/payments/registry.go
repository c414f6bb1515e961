package payments

import (
	"log"

	"splitpay/internal/domain/entities"
	"splitpay/internal/infrastructure/config"
	"splitpay/internal/usecase/interfaces"
)

// NewRegistry builds one gateway per instrument type. Stored-value instruments
// are only registered when a balance repository is available.
func NewRegistry(cfg config.Config, balances interfaces.IBalanceRepository) (map[entities.InstrumentType]interfaces.IPaymentGateway, error) {
	card, err := NewMercadoPagoGateway(cfg.MercadoPagoAccessToken, cfg.GatewayMock)
	if err != nil {
		return nil, err
	}

	gateways := map[entities.InstrumentType]interfaces.IPaymentGateway{
		entities.InstrumentCreditCard: card,
		entities.InstrumentCash:       NewCashGateway(),
		entities.InstrumentCheck:      NewCheckGateway(),
	}
	if balances != nil {
		gateways[entities.InstrumentStoreCredit] = NewBalanceGateway(entities.InstrumentStoreCredit, balances)
		gateways[entities.InstrumentGiftCard] = NewBalanceGateway(entities.InstrumentGiftCard, balances)
	} else {
		log.Printf("[payment][gateway] no balance repository; storecredit and giftcard disabled")
	}

	for t, gw := range gateways {
		gateways[t] = WithDeadline(gw, cfg.GatewayTimeout)
	}
	return gateways, nil
}
