package defense

import "testing"

func TestBurnDamageSchedule(t *testing.T) {
	var s StatusEffects
	s.Ignite()

	if !s.Burning || s.BurnTimer != BurnDuration {
		t.Fatalf("Ignite() = burning %v timer %d, expected true %d", s.Burning, s.BurnTimer, BurnDuration)
	}

	var damageTicks []int
	total := 0
	for tick := 0; tick < 150; tick++ {
		if d := s.tickBurn(); d > 0 {
			if d != BurnDamage {
				t.Errorf("tick %d: damage %d, expected %d", tick, d, BurnDamage)
			}
			damageTicks = append(damageTicks, tick)
			total += d
		}
	}

	expected := []int{0, 20, 40, 60, 80}
	if len(damageTicks) != len(expected) {
		t.Fatalf("damage landed on ticks %v, expected %v", damageTicks, expected)
	}
	for i := range expected {
		if damageTicks[i] != expected[i] {
			t.Errorf("damage landed on ticks %v, expected %v", damageTicks, expected)
			break
		}
	}
	if total != 25 {
		t.Errorf("total burn damage = %d, expected 25", total)
	}
	if s.Burning {
		t.Error("burning should stop when the timer reaches 0")
	}
	if s.BurnTimer != 0 {
		t.Errorf("BurnTimer = %d, expected 0", s.BurnTimer)
	}
}

func TestFreezeTimer(t *testing.T) {
	var s StatusEffects
	s.Freeze()

	prev := s.FreezeTimer
	for tick := 0; tick < FreezeDuration; tick++ {
		if !s.tickFreeze() {
			t.Fatalf("tick %d: expected enemy to be frozen", tick)
		}
		if s.FreezeTimer >= prev {
			t.Fatalf("tick %d: freeze timer did not decrease (%d -> %d)", tick, prev, s.FreezeTimer)
		}
		prev = s.FreezeTimer
	}

	if s.tickFreeze() {
		t.Error("freeze should end after FreezeDuration ticks")
	}
	if s.Frozen() {
		t.Error("Frozen() should be false once the timer is 0")
	}
}

func TestWindPushDecay(t *testing.T) {
	var s StatusEffects
	s.Blow()

	first := s.tickPush()
	if first != WindPush {
		t.Errorf("first push = %f, expected %f", first, WindPush)
	}
	second := s.tickPush()
	if diff := first - second; diff < WindDecay-1e-9 || diff > WindDecay+1e-9 {
		t.Errorf("push decayed by %f, expected %f", diff, WindDecay)
	}

	for tick := 0; tick < 40; tick++ {
		s.tickPush()
		if s.Push < 0 {
			t.Fatalf("push went negative: %f", s.Push)
		}
	}
	if s.Push != 0 {
		t.Errorf("push = %f, expected floor at 0", s.Push)
	}
	if d := s.tickPush(); d != 0 {
		t.Errorf("spent push still displaced by %f", d)
	}
}

func TestStatusReapplyResets(t *testing.T) {
	var s StatusEffects

	s.Ignite()
	for i := 0; i < 30; i++ {
		s.tickBurn()
	}
	s.Ignite()
	if s.BurnTimer != BurnDuration {
		t.Errorf("re-ignite: BurnTimer = %d, expected %d", s.BurnTimer, BurnDuration)
	}

	s.Freeze()
	for i := 0; i < 10; i++ {
		s.tickFreeze()
	}
	s.Freeze()
	if s.FreezeTimer != FreezeDuration {
		t.Errorf("re-freeze: FreezeTimer = %d, expected %d", s.FreezeTimer, FreezeDuration)
	}

	s.Blow()
	s.tickPush()
	s.Blow()
	if s.Push != WindPush {
		t.Errorf("re-blow: Push = %f, expected %f", s.Push, WindPush)
	}
}
