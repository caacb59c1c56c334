package kernel_test

import (
	"testing"

	"github.com/ixasales-prog/IxaSales-sub002/internal/core/domain/model/kernel"
	"github.com/ixasales-prog/IxaSales-sub002/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("should create money from non-negative decimal", func(t *testing.T) {
		m, err := kernel.NewMoney(decimal.NewFromInt(10))

		require.NoError(t, err)
		assert.Equal(t, "10.00", m.String())
	})

	t.Run("should round to two decimal places", func(t *testing.T) {
		m, err := kernel.NewMoney(decimal.RequireFromString("10.555"))

		require.NoError(t, err)
		assert.Equal(t, "10.56", m.String())
	})

	t.Run("should reject negative amount", func(t *testing.T) {
		_, err := kernel.NewMoney(decimal.NewFromInt(-1))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestNewMoneyFromString(t *testing.T) {
	t.Run("should parse decimal string", func(t *testing.T) {
		m, err := kernel.NewMoneyFromString("80.00")

		require.NoError(t, err)
		assert.Equal(t, "80.00", m.String())
	})

	t.Run("should fail on malformed string", func(t *testing.T) {
		_, err := kernel.NewMoneyFromString("ten dollars")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	ten, _ := kernel.NewMoneyFromString("10.00")
	fifty, _ := kernel.NewMoneyFromString("50.00")

	t.Run("should add amounts", func(t *testing.T) {
		assert.Equal(t, "60.00", ten.Add(fifty).String())
	})

	t.Run("should multiply by integer quantity", func(t *testing.T) {
		assert.Equal(t, "30.00", ten.MulInt(3).String())
	})

	t.Run("should subtract smaller amount", func(t *testing.T) {
		got, err := fifty.Sub(ten)

		require.NoError(t, err)
		assert.Equal(t, "40.00", got.String())
	})

	t.Run("should reject subtraction below zero", func(t *testing.T) {
		_, err := ten.Sub(fifty)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should compare numerically", func(t *testing.T) {
		tenAgain, _ := kernel.NewMoneyFromString("10")

		assert.True(t, ten.IsEqual(tenAgain))
		assert.True(t, fifty.GreaterThan(ten))
		assert.True(t, kernel.ZeroMoney().IsZero())
	})
}
