package rbac

// DefaultTable is the production permission table. It is only read through
// NewAuthorizer, which takes a private copy.
var DefaultTable = Table{
	RoleSuperAdmin: {
		ResourceEmployee:     {ActionAll},
		ResourceAttendance:   {ActionAll},
		ResourceShift:        {ActionAll},
		ResourceItem:         {ActionAll},
		ResourceVendor:       {ActionAll},
		ResourceStockIn:      {ActionAll},
		ResourceStockOut:     {ActionAll},
		ResourceStockRequest: {ActionAll},
		ResourceStockReturn:  {ActionAll},
		ResourceUnit:         {ActionAll},
	},
	RoleAdmin: {
		ResourceEmployee:     {ActionCreate, ActionView, ActionUpdate},
		ResourceAttendance:   {ActionView, ActionApprove},
		ResourceShift:        {ActionView, ActionApprove},
		ResourceItem:         {ActionView},
		ResourceVendor:       {ActionView},
		ResourceStockIn:      {ActionView},
		ResourceStockOut:     {ActionView},
		ResourceStockRequest: {ActionView},
		ResourceStockReturn:  {ActionView},
		ResourceUnit:         {ActionView},
	},
	RoleSubAdmin: {
		ResourceEmployee:   {ActionCreate, ActionView, ActionUpdate},
		ResourceAttendance: {ActionCreate, ActionView, ActionApprove},
		ResourceShift:      {ActionView, ActionApprove},
		ResourceItem:       {ActionView},
		ResourceUnit:       {ActionView},
	},
	RoleSDO: {
		ResourceEmployee:   {ActionView},
		ResourceAttendance: {ActionView},
		ResourceShift:      {ActionView},
		ResourceItem:       {ActionView},
	},
	RoleSubEngineer: {
		ResourceEmployee:     {ActionViewOwn},
		ResourceAttendance:   {ActionView},
		ResourceShift:        {ActionCreate, ActionUpdate, ActionView},
		ResourceStockRequest: {ActionCreate, ActionViewOwn},
	},
	RoleSupervisor: {
		ResourceEmployee:     {ActionViewOwn},
		ResourceAttendance:   {ActionView},
		ResourceShift:        {ActionCreate, ActionUpdate, ActionView},
		ResourceStockRequest: {ActionCreate, ActionViewOwn},
	},
	RoleEmployee: {
		ResourceEmployee:     {ActionViewOwn},
		ResourceAttendance:   {ActionView},
		ResourceShift:        {ActionView},
		ResourceItem:         {ActionView},
		ResourceStockRequest: {ActionCreate, ActionViewOwn},
	},
	RoleStoreManager: {
		ResourceItem:         {ActionCreate, ActionUpdate, ActionView, ActionDeactivate, ActionActivate},
		ResourceVendor:       {ActionAll},
		ResourceStockIn:      {ActionView},
		ResourceStockOut:     {ActionView},
		ResourceStockRequest: {ActionView},
		ResourceStockReturn:  {ActionView},
	},
	RoleInventoryOperator: {
		ResourceItem:         {ActionView},
		ResourceVendor:       {ActionView},
		ResourceStockIn:      {ActionCreate, ActionView},
		ResourceStockOut:     {ActionView},
		ResourceStockRequest: {ActionView, ActionApprove, ActionReject},
		ResourceStockReturn:  {ActionCreate, ActionView},
	},
	RoleIMSAuditOfficer: {
		ResourceItem:         {ActionView},
		ResourceVendor:       {ActionView},
		ResourceStockIn:      {ActionView},
		ResourceStockOut:     {ActionView},
		ResourceStockRequest: {ActionView},
		ResourceStockReturn:  {ActionView},
		ResourceUnit:         {ActionView},
	},
}
