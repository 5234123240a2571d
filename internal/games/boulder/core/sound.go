package core

// Sound is a request for the sound sink.
type Sound uint8

const (
	SoundNone Sound = iota
	SoundMove
	SoundDiamond
	SoundExplosion
)

func (s Sound) String() string {
	switch s {
	case SoundMove:
		return "move"
	case SoundDiamond:
		return "diamond"
	case SoundExplosion:
		return "explosion"
	default:
		return "none"
	}
}

// RequestSound replaces the pending sound request.
func (s *Sim) RequestSound(snd Sound) {
	s.sound = snd
}

// PendingSound returns the request waiting for the next flush.
func (s *Sim) PendingSound() Sound {
	return s.sound
}

// FlushSound consumes the pending request. It returns SoundNone when sound
// is switched off; the request is dropped either way.
func (s *Sim) FlushSound() Sound {
	snd := s.sound
	s.sound = SoundNone
	if !s.SoundOn {
		return SoundNone
	}
	return snd
}
