package config

import (
	"github.com/datastax/csv-projector/log"
	"github.com/stretchr/testify/mock"
)

type ConfigMock struct {
	mock.Mock
}

func NewConfigMock() *ConfigMock {
	return &ConfigMock{}
}

func (o *ConfigMock) Default() *ConfigMock {
	o.On("Naming").Return(NewDefaultNaming())
	o.On("InferTypes").Return(false)
	o.On("Indent").Return("    ")
	o.On("Logger").Return(log.NewNopLogger())
	return o
}

func (o *ConfigMock) Naming() NamingConvention {
	args := o.Called()
	return args.Get(0).(NamingConvention)
}

func (o *ConfigMock) InferTypes() bool {
	args := o.Called()
	return args.Bool(0)
}

func (o *ConfigMock) Indent() string {
	args := o.Called()
	return args.String(0)
}

func (o *ConfigMock) Logger() log.Logger {
	args := o.Called()
	return args.Get(0).(log.Logger)
}
