package commands

import (
	"errors"

	"github.com/shopspring/decimal"

	"fraktguiden/internal/core/domain/model/kernel"
	"fraktguiden/internal/core/domain/model/rates"
	"fraktguiden/internal/pkg/errs"
	"fraktguiden/internal/pkg/guard"
)

var (
	ErrSaveQuoteCommandIsNotConstructed = errors.New(
		"SaveQuoteCommand must be created via NewSaveQuoteCommand constructor",
	)
)

// SaveQuoteCommand records the shipping rate a shopper selected at checkout,
// together with the shipment summary the rate was calculated for.
type SaveQuoteCommand struct { //nolint:recvcheck //using for validation
	quoteID      kernel.UUID
	destination  rates.Destination
	packageCount int
	totalWeight  float64
	rateID       string
	cost         decimal.Decimal

	guard guard.ConstructorGuard
}

// NewSaveQuoteCommand creates a command to record a selected rate quote.
// Validates that the quote ID is valid, the destination country is present,
// the package count is positive, the weight is not negative and the rate id
// is not empty.
func NewSaveQuoteCommand(
	quoteID kernel.UUID,
	destination rates.Destination,
	packageCount int,
	totalWeight float64,
	rateID string,
	cost decimal.Decimal,
) (SaveQuoteCommand, error) {
	command := SaveQuoteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setQuoteID(quoteID),
		command.setDestination(destination),
		command.setPackageCount(packageCount),
		command.setTotalWeight(totalWeight),
		command.setRateID(rateID),
		command.setCost(cost),
	); err != nil {
		return SaveQuoteCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSaveQuoteCommandIsNotConstructed if validation fails.
func (c SaveQuoteCommand) Validate() error {
	return c.guard.Validate(ErrSaveQuoteCommandIsNotConstructed)
}

// QuoteID returns the unique identifier for the quote.
func (c SaveQuoteCommand) QuoteID() kernel.UUID {
	return c.quoteID
}

// Destination returns the shipment destination the rate was calculated for.
func (c SaveQuoteCommand) Destination() rates.Destination {
	return c.destination
}

// PackageCount returns how many packages the shipment was consolidated into.
func (c SaveQuoteCommand) PackageCount() int {
	return c.packageCount
}

// TotalWeight returns the total shipment weight in kg.
func (c SaveQuoteCommand) TotalWeight() float64 {
	return c.totalWeight
}

// RateID returns the identifier of the selected rate row.
func (c SaveQuoteCommand) RateID() string {
	return c.rateID
}

// Cost returns the selected rate's cost.
func (c SaveQuoteCommand) Cost() decimal.Decimal {
	return c.cost
}

func (c *SaveQuoteCommand) setQuoteID(quoteID kernel.UUID) error {
	if err := quoteID.Validate(); err != nil {
		return err
	}

	c.quoteID = quoteID
	return nil
}

func (c *SaveQuoteCommand) setDestination(destination rates.Destination) error {
	if destination.Country == "" {
		return errs.NewValueIsRequiredError("destination country")
	}

	c.destination = destination
	return nil
}

func (c *SaveQuoteCommand) setPackageCount(packageCount int) error {
	if packageCount <= 0 {
		return errs.NewValueIsInvalidError("packageCount")
	}

	c.packageCount = packageCount
	return nil
}

func (c *SaveQuoteCommand) setTotalWeight(totalWeight float64) error {
	if totalWeight < 0 {
		return errs.NewValueIsInvalidError("totalWeight")
	}

	c.totalWeight = totalWeight
	return nil
}

func (c *SaveQuoteCommand) setRateID(rateID string) error {
	if rateID == "" {
		return errs.NewValueIsRequiredError("rateID")
	}

	c.rateID = rateID
	return nil
}

func (c *SaveQuoteCommand) setCost(cost decimal.Decimal) error {
	if cost.IsNegative() {
		return errs.NewValueIsInvalidError("cost")
	}

	c.cost = cost
	return nil
}
