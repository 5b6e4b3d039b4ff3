package application

import (
	pkgDomain "github.com/cafeworks/go-workforce/pkg/domain"
)

// Query names, as registered on the query bus.
const (
	GetCafeByIDQueryName                  = "GetCafeByID"
	CafeNameExistsQueryName               = "CafeNameExists"
	GetCafesByLocationQueryName           = "GetCafesByLocation"
	GetAllEmployeesQueryName              = "GetAllEmployees"
	GetEmployeeByIDQueryName              = "GetEmployeeByID"
	GetEmployeeByEmailOrPhoneQueryName    = "GetEmployeeByEmailOrPhone"
	GetEmployeesByCafeIDQueryName         = "GetEmployeesByCafeID"
	GetAllEmployeeCafesQueryName          = "GetAllEmployeeCafes"
	GetEmployeeCafeByIDQueryName          = "GetEmployeeCafeByID"
	GetEmployeeCafesByCafeIDQueryName     = "GetEmployeeCafesByCafeID"
	GetEmployeeCafesByEmployeeIDQueryName = "GetEmployeeCafesByEmployeeID"
)

// QueryNames lists every query the slice handles, in registration order.
func QueryNames() []string {
	return []string{
		GetCafeByIDQueryName,
		CafeNameExistsQueryName,
		GetCafesByLocationQueryName,
		GetAllEmployeesQueryName,
		GetEmployeeByIDQueryName,
		GetEmployeeByEmailOrPhoneQueryName,
		GetEmployeesByCafeIDQueryName,
		GetAllEmployeeCafesQueryName,
		GetEmployeeCafeByIDQueryName,
		GetEmployeeCafesByCafeIDQueryName,
		GetEmployeeCafesByEmployeeIDQueryName,
	}
}

type CafeByIDData struct {
	ID string `json:"id"`
}

type cafeByIDQuery struct {
	data CafeByIDData
}

func (q cafeByIDQuery) QueryName() string {
	return GetCafeByIDQueryName
}

func (q cafeByIDQuery) Payload() CafeByIDData {
	return q.data
}

func NewGetCafeByIDQuery(data CafeByIDData) pkgDomain.Query[CafeByIDData] {
	return cafeByIDQuery{data: data}
}

type CafeNameExistsData struct {
	Name string `json:"name"`
}

type cafeNameExistsQuery struct {
	data CafeNameExistsData
}

func (q cafeNameExistsQuery) QueryName() string {
	return CafeNameExistsQueryName
}

func (q cafeNameExistsQuery) Payload() CafeNameExistsData {
	return q.data
}

func NewCafeNameExistsQuery(data CafeNameExistsData) pkgDomain.Query[CafeNameExistsData] {
	return cafeNameExistsQuery{data: data}
}

type CafesByLocationData struct {
	Location string `json:"location"`
}

type cafesByLocationQuery struct {
	data CafesByLocationData
}

func (q cafesByLocationQuery) QueryName() string {
	return GetCafesByLocationQueryName
}

func (q cafesByLocationQuery) Payload() CafesByLocationData {
	return q.data
}

func NewGetCafesByLocationQuery(data CafesByLocationData) pkgDomain.Query[CafesByLocationData] {
	return cafesByLocationQuery{data: data}
}

// AllEmployeesData is an empty payload; listing takes no parameters.
type AllEmployeesData struct{}

type allEmployeesQuery struct {
	data AllEmployeesData
}

func (q allEmployeesQuery) QueryName() string {
	return GetAllEmployeesQueryName
}

func (q allEmployeesQuery) Payload() AllEmployeesData {
	return q.data
}

func NewGetAllEmployeesQuery() pkgDomain.Query[AllEmployeesData] {
	return allEmployeesQuery{}
}

type EmployeeByIDData struct {
	ID string `json:"id"`
}

type employeeByIDQuery struct {
	data EmployeeByIDData
}

func (q employeeByIDQuery) QueryName() string {
	return GetEmployeeByIDQueryName
}

func (q employeeByIDQuery) Payload() EmployeeByIDData {
	return q.data
}

func NewGetEmployeeByIDQuery(data EmployeeByIDData) pkgDomain.Query[EmployeeByIDData] {
	return employeeByIDQuery{data: data}
}

// EmployeeByEmailOrPhoneData matches an employee on either contact field.
type EmployeeByEmailOrPhoneData struct {
	EmailAddress string `json:"emailAddress"`
	Phone        string `json:"phone"`
}

type employeeByEmailOrPhoneQuery struct {
	data EmployeeByEmailOrPhoneData
}

func (q employeeByEmailOrPhoneQuery) QueryName() string {
	return GetEmployeeByEmailOrPhoneQueryName
}

func (q employeeByEmailOrPhoneQuery) Payload() EmployeeByEmailOrPhoneData {
	return q.data
}

func NewGetEmployeeByEmailOrPhoneQuery(data EmployeeByEmailOrPhoneData) pkgDomain.Query[EmployeeByEmailOrPhoneData] {
	return employeeByEmailOrPhoneQuery{data: data}
}

type EmployeesByCafeIDData struct {
	CafeID string `json:"cafeId"`
}

type employeesByCafeIDQuery struct {
	data EmployeesByCafeIDData
}

func (q employeesByCafeIDQuery) QueryName() string {
	return GetEmployeesByCafeIDQueryName
}

func (q employeesByCafeIDQuery) Payload() EmployeesByCafeIDData {
	return q.data
}

func NewGetEmployeesByCafeIDQuery(data EmployeesByCafeIDData) pkgDomain.Query[EmployeesByCafeIDData] {
	return employeesByCafeIDQuery{data: data}
}

// AllEmployeeCafesData is an empty payload; listing takes no parameters.
type AllEmployeeCafesData struct{}

type allEmployeeCafesQuery struct {
	data AllEmployeeCafesData
}

func (q allEmployeeCafesQuery) QueryName() string {
	return GetAllEmployeeCafesQueryName
}

func (q allEmployeeCafesQuery) Payload() AllEmployeeCafesData {
	return q.data
}

func NewGetAllEmployeeCafesQuery() pkgDomain.Query[AllEmployeeCafesData] {
	return allEmployeeCafesQuery{}
}

type EmployeeCafeByIDData struct {
	ID string `json:"id"`
}

type employeeCafeByIDQuery struct {
	data EmployeeCafeByIDData
}

func (q employeeCafeByIDQuery) QueryName() string {
	return GetEmployeeCafeByIDQueryName
}

func (q employeeCafeByIDQuery) Payload() EmployeeCafeByIDData {
	return q.data
}

func NewGetEmployeeCafeByIDQuery(data EmployeeCafeByIDData) pkgDomain.Query[EmployeeCafeByIDData] {
	return employeeCafeByIDQuery{data: data}
}

type EmployeeCafesByCafeIDData struct {
	CafeID string `json:"cafeId"`
}

type employeeCafesByCafeIDQuery struct {
	data EmployeeCafesByCafeIDData
}

func (q employeeCafesByCafeIDQuery) QueryName() string {
	return GetEmployeeCafesByCafeIDQueryName
}

func (q employeeCafesByCafeIDQuery) Payload() EmployeeCafesByCafeIDData {
	return q.data
}

func NewGetEmployeeCafesByCafeIDQuery(data EmployeeCafesByCafeIDData) pkgDomain.Query[EmployeeCafesByCafeIDData] {
	return employeeCafesByCafeIDQuery{data: data}
}

type EmployeeCafesByEmployeeIDData struct {
	EmployeeID string `json:"employeeId"`
}

type employeeCafesByEmployeeIDQuery struct {
	data EmployeeCafesByEmployeeIDData
}

func (q employeeCafesByEmployeeIDQuery) QueryName() string {
	return GetEmployeeCafesByEmployeeIDQueryName
}

func (q employeeCafesByEmployeeIDQuery) Payload() EmployeeCafesByEmployeeIDData {
	return q.data
}

func NewGetEmployeeCafesByEmployeeIDQuery(data EmployeeCafesByEmployeeIDData) pkgDomain.Query[EmployeeCafesByEmployeeIDData] {
	return employeeCafesByEmployeeIDQuery{data: data}
}
