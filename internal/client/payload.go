package client

import (
	"fmt"
	"strings"

	"github.com/AlexZinkM/coin-transfer/internal/model"

	"github.com/aptos-labs/aptos-go-sdk"
	"github.com/aptos-labs/aptos-go-sdk/bcs"
)

// EntryFunction converts a payload into its BCS encoded entry function
func EntryFunction(payload model.EntryFunctionPayload) (*aptos.EntryFunction, error) {
	address, module, name, err := splitQualifiedName(payload.Function)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid function: %w", model.ErrValidation, err)
	}

	typeArgs := make([]aptos.TypeTag, 0, len(payload.TypeArguments))
	for _, typeArgument := range payload.TypeArguments {
		tag, err := ParseStructTag(typeArgument)
		if err != nil {
			return nil, err
		}
		typeArgs = append(typeArgs, tag)
	}

	args := make([][]byte, 0, len(payload.Arguments))
	for i, argument := range payload.Arguments {
		encoded, err := encodeArgument(argument)
		if err != nil {
			return nil, fmt.Errorf("%w: argument %d: %w", model.ErrValidation, i, err)
		}
		args = append(args, encoded)
	}

	return &aptos.EntryFunction{
		Module: aptos.ModuleId{
			Address: address,
			Name:    module,
		},
		Function: name,
		ArgTypes: typeArgs,
		Args:     args,
	}, nil
}

// ParseStructTag parses a non generic struct type such as 0x1::aptos_coin::AptosCoin
func ParseStructTag(s string) (aptos.TypeTag, error) {
	address, module, name, err := splitQualifiedName(s)
	if err != nil {
		return aptos.TypeTag{}, fmt.Errorf("%w: invalid type argument: %w", model.ErrValidation, err)
	}

	return aptos.TypeTag{Value: &aptos.StructTag{
		Address: address,
		Module:  module,
		Name:    name,
	}}, nil
}

// splitQualifiedName splits address::module::name
func splitQualifiedName(s string) (aptos.AccountAddress, string, string, error) {
	parts := strings.Split(s, "::")
	if len(parts) != 3 || parts[1] == "" || parts[2] == "" {
		return aptos.AccountAddress{}, "", "", fmt.Errorf("%q is not of form address::module::name", s)
	}

	var address aptos.AccountAddress
	if err := address.ParseStringRelaxed(parts[0]); err != nil {
		return aptos.AccountAddress{}, "", "", fmt.Errorf("%q: %w", s, err)
	}
	return address, parts[1], parts[2], nil
}

func encodeArgument(argument any) ([]byte, error) {
	switch v := argument.(type) {
	case aptos.AccountAddress:
		return bcs.Serialize(&v)
	case uint64:
		return bcs.SerializeU64(v)
	default:
		return nil, fmt.Errorf("unsupported argument type %T", argument)
	}
}
