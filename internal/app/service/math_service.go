package service

import (
	"fmt"
	"math/big"
)

// MaxSequenceInput bounds factorial and Fibonacci arguments.
const MaxSequenceInput = 10000

// MathService backs the numeric endpoints. It shares nothing with the shop.
type MathService interface {
	Factorial(n int64) (*big.Int, error)
	Fibonacci(n int64) (*big.Int, error)
	Mean(values []float64) (float64, error)
}

type mathService struct{}

func NewMathService() MathService {
	return &mathService{}
}

func checkSequenceInput(n int64) error {
	if n < 0 {
		return ErrNegativeInput
	}
	if n > MaxSequenceInput {
		return fmt.Errorf("%w: n must be at most %d", ErrInputTooLarge, MaxSequenceInput)
	}
	return nil
}

func (s *mathService) Factorial(n int64) (*big.Int, error) {
	if err := checkSequenceInput(n); err != nil {
		return nil, err
	}
	if n < 2 {
		return big.NewInt(1), nil
	}
	return new(big.Int).MulRange(2, n), nil
}

func (s *mathService) Fibonacci(n int64) (*big.Int, error) {
	if err := checkSequenceInput(n); err != nil {
		return nil, err
	}
	a, b := big.NewInt(0), big.NewInt(1)
	for i := int64(0); i < n; i++ {
		a.Add(a, b)
		a, b = b, a
	}
	return a, nil
}

func (s *mathService) Mean(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrEmptyInput
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values)), nil
}
