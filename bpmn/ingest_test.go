package bpmn

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const linearDiagram = `<?xml version="1.0" encoding="UTF-8"?>
<bpmn:definitions xmlns:bpmn="http://www.omg.org/spec/BPMN/20100524/MODEL">
  <bpmn:process id="Process_1">
    <bpmn:startEvent id="Start_1" name="Begin"/>
    <bpmn:userTask id="Task_1" name="Review Order"/>
    <bpmn:endEvent id="End_1" name="Done"/>
    <bpmn:sequenceFlow id="Flow_1" sourceRef="Start_1" targetRef="Task_1"/>
    <bpmn:sequenceFlow id="Flow_2" sourceRef="Task_1" targetRef="End_1"/>
  </bpmn:process>
</bpmn:definitions>`

const messageCatchDiagram = `<?xml version="1.0" encoding="UTF-8"?>
<bpmn:definitions xmlns:bpmn="http://www.omg.org/spec/BPMN/20100524/MODEL">
  <bpmn:process id="Process_1">
    <bpmn:startEvent id="Start_1"/>
    <bpmn:intermediateCatchEvent id="Catch_1">
      <bpmn:messageEventDefinition id="Def_1"/>
    </bpmn:intermediateCatchEvent>
    <bpmn:intermediateCatchEvent id="Catch_2">
      <bpmn:timerEventDefinition id="Def_2"/>
    </bpmn:intermediateCatchEvent>
    <bpmn:intermediateCatchEvent id="Catch_3"/>
  </bpmn:process>
</bpmn:definitions>`

func TestParseLinear(t *testing.T) {
	p := NewParser()
	g, err := p.Parse([]byte(linearDiagram))
	assert.NoError(t, err)
	assert.Len(t, g.Nodes, 3)
	assert.Equal(t, StartEvent, g.NodeByID("Start_1").Kind)
	assert.Equal(t, "Begin", g.NodeByID("Start_1").Name)
	assert.Equal(t, UserTask, g.NodeByID("Task_1").Kind)
	assert.Equal(t, EndEvent, g.NodeByID("End_1").Kind)
	assert.Len(t, g.EdgesOfKind(SequenceFlowEdge), 2)
}

func TestParseIntermediateCatchEventSubclassification(t *testing.T) {
	p := NewParser()
	g, err := p.Parse([]byte(messageCatchDiagram))
	assert.NoError(t, err)
	assert.Equal(t, MessageCatchEvent, g.NodeByID("Catch_1").Kind)
	assert.Equal(t, TimerCatchEvent, g.NodeByID("Catch_2").Kind)
	assert.Equal(t, IntermediateCatchEvent, g.NodeByID("Catch_3").Kind)
}

func TestParseRejectsNonBPMNRoot(t *testing.T) {
	p := NewParser()
	_, err := p.Parse([]byte(`<foo/>`))
	assert.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedInput)
}

func TestParseRejectsEmptyInput(t *testing.T) {
	p := NewParser()
	_, err := p.Parse([]byte(``))
	assert.Error(t, err)
}
