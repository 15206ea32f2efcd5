package event

import "testing"

type recorder struct {
	got []Event
}

func (r *recorder) OnEvent(e Event) {
	r.got = append(r.got, e)
}

func TestDispatchDeliversInSubscriptionOrder(t *testing.T) {
	t.Parallel()

	d := NewDispatcher()
	var order []string
	first := &namedListener{name: "first", out: &order}
	second := &namedListener{name: "second", out: &order}
	d.Subscribe(EnemyMoved, first)
	d.Subscribe(EnemyMoved, second)

	d.Dispatch(Event{Type: EnemyMoved})
	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Fatalf("order = %v", order)
	}
}

func TestDispatchIgnoresOtherTypes(t *testing.T) {
	t.Parallel()

	d := NewDispatcher()
	r := &recorder{}
	d.Subscribe(EnemyAttacked, r)
	d.Dispatch(Event{Type: EnemyWaited})
	if len(r.got) != 0 {
		t.Fatalf("got %d events, want 0", len(r.got))
	}
}

func TestUnsubscribe(t *testing.T) {
	t.Parallel()

	d := NewDispatcher()
	r := &recorder{}
	d.SubscribeAll(r, EnemyActions...)
	d.Unsubscribe(EnemyWaited, r)

	for _, typ := range EnemyActions {
		d.Dispatch(Event{Type: typ, Data: typ})
	}
	if len(r.got) != 3 {
		t.Fatalf("got %d events, want 3", len(r.got))
	}
	for _, e := range r.got {
		if e.Type == EnemyWaited {
			t.Fatal("unsubscribed type still delivered")
		}
	}
}

type namedListener struct {
	name string
	out  *[]string
}

func (n *namedListener) OnEvent(Event) {
	*n.out = append(*n.out, n.name)
}
