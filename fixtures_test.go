package fluent

import "strings"

type person struct {
	Civility  string
	FirstName string
	LastName  string
	Age       int
	Address   *address
}

type address struct {
	Street string
	City   string
	Zip    string
}

func newPerson(first, last string, age int) person {
	return person{Civility: "MR", FirstName: first, LastName: last, Age: age}
}

func firstNameStarts(prefix string) Predicate[person] {
	return func(p person) bool {
		return strings.HasPrefix(p.FirstName, prefix)
	}
}

func firstNameIs(name string) Predicate[person] {
	return func(p person) bool {
		return p.FirstName == name
	}
}
