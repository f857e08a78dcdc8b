package rbac

import (
	"reflect"
	"testing"
)

// leaves flattens a table into named capabilities, including the
// grouped tabs, so invariants can be checked across every field.
func leaves(p TabPermissions) map[string]Capability {
	out := map[string]Capability{
		"banking.allFields":           p.Banking.AllFields,
		"qualifications.allFields":    p.Qualifications.AllFields,
		"emergencyContacts.allFields": p.EmergencyContacts.AllFields,
	}
	sections := map[string]any{
		"coreIdentity": p.CoreIdentity,
		"employment":   p.Employment,
		"contact":      p.Contact,
	}
	for name, section := range sections {
		v := reflect.ValueOf(section)
		t := v.Type()
		for i := 0; i < v.NumField(); i++ {
			out[name+"."+t.Field(i).Name] = v.Field(i).Interface().(Capability)
		}
	}
	return out
}

func TestWriteImpliesReadForAllRoles(t *testing.T) {
	for _, role := range []Role{RoleHRAdmin, RoleManager, RoleEmployee, Role("intruder")} {
		for _, self := range []bool{true, false} {
			for name, cap := range leaves(Resolve(role, self)) {
				if cap.Write() && !cap.Read() {
					t.Fatalf("%s/%v: %s writable without read", role, self, name)
				}
			}
		}
	}
}

func TestManagerBankingNeverVisible(t *testing.T) {
	for _, self := range []bool{true, false} {
		p := Resolve(RoleManager, self)
		if p.Banking.Visible {
			t.Fatalf("manager banking visible with self=%v", self)
		}
		if p.Banking.AllFields.Read() {
			t.Fatalf("manager banking readable with self=%v", self)
		}
	}
}

func TestManagerIdentityNumbersMasked(t *testing.T) {
	p := Resolve(RoleManager, false)
	if !p.CoreIdentity.NricFin.Masked() || !p.CoreIdentity.IdentityNo.Masked() {
		t.Fatal("manager should see national id fields masked")
	}
	if p.CoreIdentity.NricFin.Write() {
		t.Fatal("manager must not write identity fields")
	}
}

func TestEmployeeForeignProfileFullyDenied(t *testing.T) {
	p := Resolve(RoleEmployee, false)
	for name, cap := range leaves(p) {
		if cap.Read() || cap.Write() {
			t.Fatalf("employee viewing foreign profile can access %s", name)
		}
	}
	if p.Banking.Visible {
		t.Fatal("banking tab visible on foreign profile")
	}
}

func TestEmployeeSelfServiceMatrix(t *testing.T) {
	p := Resolve(RoleEmployee, true)

	if p.CoreIdentity.NricFin.Write() {
		t.Fatal("self-service must not edit NRIC")
	}
	if !p.CoreIdentity.Religion.Write() {
		t.Fatal("self-service should edit religion")
	}
	if !p.CoreIdentity.Alias.Write() || !p.CoreIdentity.MaritalStatus.Write() {
		t.Fatal("self-service should edit alias and marital status")
	}
	if p.CoreIdentity.FullName.Write() {
		t.Fatal("self-service must not edit full name")
	}

	contact := []Capability{
		p.Contact.ContactNo, p.Contact.HomeNo, p.Contact.PersonalEmail,
		p.Contact.MailingAddress, p.Contact.OverseasAddress,
	}
	for i, cap := range contact {
		if !cap.Write() {
			t.Fatalf("self-service contact field %d should be editable", i)
		}
	}

	if !p.Banking.Visible {
		t.Fatal("own banking should be visible")
	}
	if p.Banking.AllFields.Write() {
		t.Fatal("own banking is read-only, changes go through a request")
	}
	if !p.Qualifications.AllFields.Write() || !p.EmergencyContacts.AllFields.Write() {
		t.Fatal("self-service should edit qualifications and emergency contacts")
	}
}

func TestDerivedEmploymentFieldsNeverWritable(t *testing.T) {
	for _, role := range []Role{RoleHRAdmin, RoleManager, RoleEmployee} {
		for _, self := range []bool{true, false} {
			p := Resolve(role, self)
			if p.Employment.EmployeeID.Write() {
				t.Fatalf("%s/%v: employeeId writable", role, self)
			}
			if p.Employment.RetirementYear.Write() || p.Employment.RetirementDate.Write() {
				t.Fatalf("%s/%v: retirement fields writable", role, self)
			}
		}
	}
}

func TestUnknownRoleFailsClosed(t *testing.T) {
	p := Resolve(Role("superuser"), true)
	for name, cap := range leaves(p) {
		if cap.Read() || cap.Write() {
			t.Fatalf("unknown role granted access to %s", name)
		}
	}
}

func TestResolveIsPure(t *testing.T) {
	first := Resolve(RoleManager, false)
	second := Resolve(RoleManager, false)
	if !reflect.DeepEqual(first, second) {
		t.Fatal("identical inputs must yield identical tables")
	}
}

func TestHRAdminFullAccessOutsideDerivedFields(t *testing.T) {
	p := Resolve(RoleHRAdmin, false)
	if !p.Banking.Visible || !p.Banking.AllFields.Write() {
		t.Fatal("hr_admin should have writable banking")
	}
	if !p.CoreIdentity.NricFin.Write() || p.CoreIdentity.NricFin.Masked() {
		t.Fatal("hr_admin sees identity fields unmasked and writable")
	}
	if !p.Employment.RetirementAge.Write() {
		t.Fatal("hr_admin should edit retirement age")
	}
}
