package source

import (
	"context"
	"github.com/datastax/csv-projector/types"
	"github.com/stretchr/testify/mock"
)

type FetcherMock struct {
	mock.Mock
}

func NewFetcherMock() *FetcherMock {
	return &FetcherMock{}
}

func (o *FetcherMock) Fetch(ctx context.Context, location string) (*types.Table, error) {
	args := o.Called(ctx, location)
	table, _ := args.Get(0).(*types.Table)
	return table, args.Error(1)
}
