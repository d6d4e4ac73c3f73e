package emit

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var testOptions = Options{
	TypesImport:    "../types",
	RegistryImport: "./sample-ids",
}

func TestRenderFactory(t *testing.T) {
	f := &Factory{
		Name:     "UserCard",
		TypeName: "User",
		Fields: []Field{
			{Name: "id", Expr: RegistryRef{TypeName: "User"}},
			{Name: "email", Expr: Literal(`"mira@example.com"`)},
			{Name: "role", Expr: EnumRef{Enum: "Role", Member: "ADMIN"}},
			{Name: "friend", Expr: FactoryCall{Fragment: "UserCardFriend"}},
		},
	}

	want := `// Code generated by gqlmock. DO NOT EDIT.

import { Role } from "../types";
import { sampleIds } from "./sample-ids";
import { createUserCardFriendMock } from "./user-card-friend.mock";

export const userCardMock = {
  id: sampleIds.User[0],
  email: "mira@example.com",
  role: Role.Admin,
  friend: createUserCardFriendMock(),
  __typename: "User",
};

export const createUserCardMock = (overrides = {}) => ({
  ...userCardMock,
  ...overrides,
});
`
	if diff := cmp.Diff(want, string(Render(f, testOptions))); diff != "" {
		t.Errorf("artifact mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderSpreadsAndLists(t *testing.T) {
	f := &Factory{
		Name:     "OrderSummary",
		TypeName: "Order",
		Spreads:  []string{"OrderBase"},
		Fields: []Field{
			{Name: "tags", Expr: Literal(`"word"`), List: true},
			{Name: "items", Expr: FactoryCall{Fragment: "LineItem"}, List: true},
		},
	}

	want := `// Code generated by gqlmock. DO NOT EDIT.

import { createLineItemMock } from "./line-item.mock";
import { orderBaseMock } from "./order-base.mock";

export const orderSummaryMock = {
  ...orderBaseMock,
  tags: ["word"],
  items: [createLineItemMock()],
  __typename: "Order",
};

export const createOrderSummaryMock = (overrides = {}) => ({
  ...orderSummaryMock,
  ...overrides,
});
`
	if diff := cmp.Diff(want, string(Render(f, testOptions))); diff != "" {
		t.Errorf("artifact mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderWithoutImports(t *testing.T) {
	f := &Factory{
		Name:     "Toggle",
		TypeName: "Toggle",
		Fields:   []Field{{Name: "enabled", Expr: Literal("true")}},
	}

	want := `// Code generated by gqlmock. DO NOT EDIT.

export const toggleMock = {
  enabled: true,
  __typename: "Toggle",
};

export const createToggleMock = (overrides = {}) => ({
  ...toggleMock,
  ...overrides,
});
`
	if diff := cmp.Diff(want, string(Render(f, testOptions))); diff != "" {
		t.Errorf("artifact mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderMergesImportsFromOneModule(t *testing.T) {
	// A fragment that both spreads Base and calls its factory pulls two
	// symbols out of the same module.
	f := &Factory{
		Name:     "Wide",
		TypeName: "Thing",
		Spreads:  []string{"Base"},
		Fields: []Field{
			{Name: "parent", Expr: FactoryCall{Fragment: "Base"}},
		},
	}

	got := string(Render(f, testOptions))
	want := "import { baseMock, createBaseMock } from \"./base.mock\";"
	if !strings.Contains(got, want) {
		t.Errorf("expected %q in rendered artifact:\n%s", want, got)
	}
}

func TestRenderSortsEnumImports(t *testing.T) {
	f := &Factory{
		Name:     "Audit",
		TypeName: "Audit",
		Fields: []Field{
			{Name: "status", Expr: EnumRef{Enum: "Status", Member: "OPEN"}},
			{Name: "role", Expr: EnumRef{Enum: "Role", Member: "ADMIN"}},
		},
	}

	got := string(Render(f, testOptions))
	want := "import { Role, Status } from \"../types\";"
	if !strings.Contains(got, want) {
		t.Errorf("expected %q in rendered artifact:\n%s", want, got)
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	f := &Factory{
		Name:     "UserCard",
		TypeName: "User",
		Spreads:  []string{"UserBase"},
		Fields: []Field{
			{Name: "id", Expr: RegistryRef{TypeName: "User"}},
			{Name: "role", Expr: EnumRef{Enum: "Role", Member: "MEMBER"}},
			{Name: "friend", Expr: FactoryCall{Fragment: "Friend"}},
		},
	}
	first := Render(f, testOptions)
	for i := 0; i < 5; i++ {
		if diff := cmp.Diff(string(first), string(Render(f, testOptions))); diff != "" {
			t.Fatalf("render diverged (-want +got):\n%s", diff)
		}
	}
}
