package address

import "github.com/ethereum/go-ethereum/common"

// SwitchProcessorAddress is the account that owns all durable state of the
// dead-man's-switch processor. The suffix spells "switch" in hex-adjacent
// notation so the address is recognizable in raw state dumps.
var SwitchProcessorAddress = common.HexToAddress("0x0000000000000000000000000000005357697463")
