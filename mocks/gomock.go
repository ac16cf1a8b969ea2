package mocks

//go:generate mockgen -source=./../engine/engine.go -destination=./enginemocks/engine_mock.go -package=enginemocks
//go:generate mockgen -source=./../client/modules/state/state.go -destination=./clientmocks/state_mock.go -package=clientmocks
//go:generate mockgen -source=./../client/services/keyring/keyring_service.go -destination=./servicemocks/keyring_mock.go -package=servicemocks
