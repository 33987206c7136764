package protocol

// Inbound event methods. The vocabulary is closed and case-sensitive; anything
// else is ignored by the engine.
const (
	MethodAddAccount              = "add account table"
	MethodDeleteAccount           = "delete account table"
	MethodReorderAccount          = "reorder account"
	MethodSetAccountName          = "set account name"
	MethodUpdateAccountBalance    = "update account balance"
	MethodUpdateAccountAllocation = "update account allocation"
	MethodAddTransaction          = "add transaction row"
	MethodDeleteTransaction       = "delete transaction row"
	MethodUpdateTransaction       = "update transaction row"
	MethodCheckTransaction        = "check transaction row"
	MethodUnselectTransaction     = "remove transaction row selection"
	MethodUpdateNetIncome         = "update net income"
	MethodUpdateTotalBalance      = "update total balance"
	MethodMarkSaved               = "mark as saved"
	MethodMarkUnsaved             = "mark as unsaved"
)

// Outbound command methods.
const (
	CommandCreateAccount     = "create account"
	CommandRemoveAccount     = "remove account"
	CommandCloseAccount      = "close account"
	CommandRenameAccount     = "rename account"
	CommandTransfer          = "transfer"
	CommandAllocate          = "allocate"
	CommandAddTransaction    = "add transaction"
	CommandRemoveTransaction = "remove transaction"
	CommandVerifyTransaction = "verify transaction"
	CommandSave              = "save"
	CommandReduce            = "reduce"
	CommandRestore           = "restore"
)
